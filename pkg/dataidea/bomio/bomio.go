// Package bomio exports catalog snapshots as CycloneDX BOMs.
package bomio

import (
	"io"

	cdx "github.com/CycloneDX/cyclonedx-go"

	"github.com/dataidea/dataidea-cli/internal/catalog"
	"github.com/dataidea/dataidea-cli/internal/export"
	bomio "github.com/dataidea/dataidea-cli/internal/io"
)

// Build returns a BOM with one data component per dataset.
// siteURL may be empty to link to the public DataIdea site.
func Build(datasets []catalog.Dataset, siteURL string) *cdx.BOM {
	return export.Build(datasets, export.Options{SiteURL: siteURL, ToolVersion: export.Version()})
}

// Encode writes bom to w. format is "json" or "xml"; spec may be empty for the
// latest CycloneDX version.
func Encode(w io.Writer, bom *cdx.BOM, format, spec string) error {
	return bomio.EncodeBOM(w, bom, format, spec)
}

// WriteBOM writes bom to path. format "auto" follows the file extension.
func WriteBOM(bom *cdx.BOM, path, format, spec string) error {
	return bomio.WriteBOM(bom, path, format, spec)
}

// ReadBOM reads a BOM written by WriteBOM.
func ReadBOM(path, format string) (*cdx.BOM, error) {
	return bomio.ReadBOM(path, format)
}

// ParseSpecVersion parses a CycloneDX spec version such as "1.5".
func ParseSpecVersion(s string) (cdx.SpecVersion, bool) {
	return bomio.ParseSpecVersion(s)
}
