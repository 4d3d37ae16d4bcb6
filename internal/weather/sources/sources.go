package sources

import (
	"net/http"

	"github.com/i474232898/weather-data-analyzer/internal/common"
	"github.com/i474232898/weather-data-analyzer/internal/weather"
)

// New picks an HTTP source for http(s) URLs and a file source otherwise.
func New(location string, client *http.Client) weather.Source {
	if common.HasAnyPrefix(location, "http://", "https://") {
		return NewHTTPSource(client, location)
	}
	return NewFileSource(location)
}
