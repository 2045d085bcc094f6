package catalog

import (
	"github.com/dhowden/tag"
	"github.com/spf13/afero"
)

// Tags holds the embedded metadata of a downloaded file.
type Tags struct {
	Artist string
	Title  string
	Album  string
	Format string
}

// ReadTags reads the embedded tags of the cached file at path.
func (c *Cache) ReadTags(path string) (Tags, error) {
	return readTags(c.fs, path)
}

func readTags(fs afero.Fs, path string) (Tags, error) {
	f, err := fs.Open(path)
	if err != nil {
		return Tags{}, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return Tags{}, err
	}

	return Tags{
		Artist: m.Artist(),
		Title:  m.Title(),
		Album:  m.Album(),
		Format: string(m.FileType()),
	}, nil
}
