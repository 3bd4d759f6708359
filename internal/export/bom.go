// Package export describes the catalog as a CycloneDX BOM with one data component per
// dataset, so catalog snapshots can be archived and diffed with standard tooling.
package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	cdx "github.com/CycloneDX/cyclonedx-go"

	"github.com/dataidea/dataidea-cli/internal/catalog"
	"github.com/dataidea/dataidea-cli/internal/sources"
)

// DefaultSiteURL is the public catalog site dataset pages live under.
const DefaultSiteURL = "https://dataidea.org"

// Options control BOM metadata.
type Options struct {
	SiteURL     string // defaults to DefaultSiteURL
	ToolVersion string // defaults to Version()
	Now         func() time.Time
}

const catalogRef = "dataidea-catalog"

// Build returns a BOM whose metadata component is the catalog and whose components
// are the given datasets, in order.
func Build(datasets []catalog.Dataset, opts Options) *cdx.BOM {
	site := strings.TrimRight(strings.TrimSpace(opts.SiteURL), "/")
	if site == "" {
		site = DefaultSiteURL
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	bom := cdx.NewBOM()
	bom.Metadata = &cdx.Metadata{
		Component: &cdx.Component{
			BOMRef: catalogRef,
			Type:   cdx.ComponentTypeData,
			Name:   "DataIdea dataset catalog",
			ExternalReferences: &[]cdx.ExternalReference{
				{Type: cdx.ERTypeWebsite, URL: site + "/datasets"},
			},
		},
	}
	addSerialNumber(bom)
	addTimestamp(bom, now())
	addTool(bom, opts.ToolVersion)

	comps := make([]cdx.Component, 0, len(datasets))
	refs := make([]string, 0, len(datasets))
	for _, d := range datasets {
		c := datasetComponent(d, site)
		logf(d.Slug, "component %s", c.BOMRef)
		comps = append(comps, c)
		refs = append(refs, c.BOMRef)
	}
	bom.Components = &comps
	bom.Dependencies = &[]cdx.Dependency{{Ref: catalogRef, Dependencies: &refs}}
	return bom
}

func datasetRef(d catalog.Dataset) string {
	if d.Slug != "" {
		return "dataset:" + d.Slug
	}
	return fmt.Sprintf("dataset:id-%d", d.ID)
}

func datasetComponent(d catalog.Dataset, site string) cdx.Component {
	c := cdx.Component{
		BOMRef:      datasetRef(d),
		Type:        cdx.ComponentTypeData,
		Name:        d.Title,
		Description: d.Description,
		Data: &[]cdx.ComponentData{{
			Type: cdx.ComponentDataTypeDataset,
			Name: d.Slug,
		}},
	}
	if !d.UpdatedAt.IsZero() {
		c.Version = d.UpdatedAt.UTC().Format("2006-01-02")
	}
	if d.Slug != "" {
		c.PackageURL = "pkg:generic/dataidea/" + d.Slug
	}
	if d.License != "" {
		c.Licenses = &cdx.Licenses{{License: &cdx.License{Name: d.License}}}
	}
	if name := strings.TrimSpace(d.Author.Username); name != "" {
		c.Authors = &[]cdx.OrganizationalContact{{Name: name, Email: d.Author.Email}}
	}

	if tags := d.TagList(); len(tags) > 0 {
		c.Tags = &tags
	}

	refs := []cdx.ExternalReference{}
	if d.Slug != "" {
		refs = append(refs, cdx.ExternalReference{Type: cdx.ERTypeWebsite, URL: site + "/datasets/" + d.Slug})
	}
	if file := strings.TrimSpace(d.File); file != "" {
		refs = append(refs, cdx.ExternalReference{Type: cdx.ERTypeDistribution, URL: file})
	}
	if sources.IsValidURL(d.SourceURL) {
		refs = append(refs, cdx.ExternalReference{Type: cdx.ERTypeOther, URL: strings.TrimSpace(d.SourceURL), Comment: "source"})
	}
	if len(refs) > 0 {
		c.ExternalReferences = &refs
	}

	props := []cdx.Property{
		{Name: "dataidea:download_count", Value: strconv.Itoa(d.DownloadCount)},
	}
	if d.FileType != "" {
		props = append(props, cdx.Property{Name: "dataidea:file_type", Value: d.FileType})
	}
	if d.FileSize != nil {
		props = append(props, cdx.Property{Name: "dataidea:file_size", Value: catalog.FormatFileSize(d.FileSize)})
	}
	for _, cat := range d.Categories {
		props = append(props, cdx.Property{Name: "dataidea:category", Value: cat.Slug})
	}
	if sources.IsExternalLink(d.File) {
		props = append(props, cdx.Property{Name: "dataidea:source", Value: sources.Detect(d.File).Name})
	}
	if !d.CreatedAt.IsZero() {
		props = append(props, cdx.Property{Name: "dataidea:created_at", Value: d.CreatedAt.UTC().Format(time.RFC3339)})
	}
	c.Properties = &props
	return c
}
