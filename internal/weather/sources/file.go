package sources

import (
	"context"
	"fmt"
	"os"

	"github.com/i474232898/weather-data-analyzer/internal/weather"
)

// FileSource loads the series from a local CSV file.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string {
	return "file:" + s.path
}

func (s *FileSource) Load(ctx context.Context) (weather.LoadResult, error) {
	if err := ctx.Err(); err != nil {
		return weather.LoadResult{}, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return weather.LoadResult{}, fmt.Errorf("open weather data: %w", err)
	}
	defer f.Close()

	return ParseCSV(f)
}
