package stderr

import (
	"bufio"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// forward logs every non-blank line read from r until EOF.
func forward(r io.Reader, log logrus.FieldLogger) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			log.WithField("source", "stderr").Warn(line)
		}
	}
}
