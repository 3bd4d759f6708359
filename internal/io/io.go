// Package io writes command output: catalog records as JSON or YAML and CycloneDX
// catalog BOMs.
package io

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	cdx "github.com/CycloneDX/cyclonedx-go"
)

// ResolveBOMFormat picks json or xml for path. "auto" (or "") follows the file
// extension and defaults to JSON; an explicit format must match a .json/.xml extension.
func ResolveBOMFormat(path, format string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	actual := strings.ToLower(strings.TrimSpace(format))
	switch actual {
	case "", "auto":
		if ext == ".xml" {
			return "xml", nil
		}
		return "json", nil
	case "json", "xml":
	default:
		return "", fmt.Errorf("unsupported BOM format: %q", format)
	}

	if path != "" && ext != "" && ext != "."+actual {
		return "", fmt.Errorf("output path extension %q does not match format %q", ext, actual)
	}
	return actual, nil
}

func fileFormat(format string) cdx.BOMFileFormat {
	if format == "xml" {
		return cdx.BOMFileFormatXML
	}
	return cdx.BOMFileFormatJSON
}

// EncodeBOM writes bom to w in format (json|xml). A non-empty spec selects the
// CycloneDX version to encode with.
func EncodeBOM(w io.Writer, bom *cdx.BOM, format, spec string) error {
	enc := cdx.NewBOMEncoder(w, fileFormat(format))
	enc.SetPretty(true)

	if strings.TrimSpace(spec) == "" {
		return enc.Encode(bom)
	}
	sv, ok := ParseSpecVersion(spec)
	if !ok {
		return fmt.Errorf("unsupported CycloneDX spec version: %q", spec)
	}
	// cyclonedx-go keeps component tags when encoding below 1.6, where they do not exist.
	// See https://github.com/CycloneDX/cyclonedx-go/issues/248
	if sv < cdx.SpecVersion1_6 {
		stripTags(bom)
	}
	return enc.EncodeVersion(bom, sv)
}

func stripTags(bom *cdx.BOM) {
	if bom.Metadata != nil && bom.Metadata.Component != nil {
		stripComponentTags(bom.Metadata.Component)
	}
	if bom.Components != nil {
		for i := range *bom.Components {
			stripComponentTags(&(*bom.Components)[i])
		}
	}
}

func stripComponentTags(c *cdx.Component) {
	c.Tags = nil
	if c.Components != nil {
		for i := range *c.Components {
			stripComponentTags(&(*c.Components)[i])
		}
	}
}

// WriteBOM writes bom to outputPath, creating parent directories.
func WriteBOM(bom *cdx.BOM, outputPath, format, spec string) error {
	actual, err := ResolveBOMFormat(outputPath, format)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	if err := EncodeBOM(f, bom, actual, spec); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadBOM reads a BOM file (json, xml or auto by extension).
func ReadBOM(path, format string) (*cdx.BOM, error) {
	actual, err := ResolveBOMFormat(path, format)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bom := new(cdx.BOM)
	if err := cdx.NewBOMDecoder(f, fileFormat(actual)).Decode(bom); err != nil {
		return nil, err
	}
	return bom, nil
}

var specVersions = map[string]cdx.SpecVersion{
	"1.0": cdx.SpecVersion1_0,
	"1.1": cdx.SpecVersion1_1,
	"1.2": cdx.SpecVersion1_2,
	"1.3": cdx.SpecVersion1_3,
	"1.4": cdx.SpecVersion1_4,
	"1.5": cdx.SpecVersion1_5,
	"1.6": cdx.SpecVersion1_6,
}

// ParseSpecVersion parses "1.0".."1.6". Unknown values return 1.6 and false.
func ParseSpecVersion(s string) (cdx.SpecVersion, bool) {
	sv, ok := specVersions[strings.TrimSpace(s)]
	if !ok {
		return cdx.SpecVersion1_6, false
	}
	return sv, true
}
