package export

import (
	"time"

	cdx "github.com/CycloneDX/cyclonedx-go"
	"github.com/google/uuid"
)

const (
	ToolVendor = "DataIdea"
	ToolName   = "dataidea-cli"
)

// addSerialNumber sets a urn:uuid serial number if none is set.
func addSerialNumber(bom *cdx.BOM) {
	if bom.SerialNumber == "" {
		bom.SerialNumber = "urn:uuid:" + uuid.New().String()
	}
}

func addTimestamp(bom *cdx.BOM, now time.Time) {
	if bom.Metadata.Timestamp == "" {
		bom.Metadata.Timestamp = now.Format(time.RFC3339)
	}
}

// addTool records this CLI in metadata.tools.
func addTool(bom *cdx.BOM, version string) {
	if bom.Metadata.Tools == nil {
		bom.Metadata.Tools = &cdx.ToolsChoice{}
	}
	if version == "" {
		version = Version()
	}
	tool := cdx.Component{
		Type:         cdx.ComponentTypeApplication,
		Manufacturer: &cdx.OrganizationalEntity{Name: ToolVendor},
		Name:         ToolName,
		Version:      version,
	}
	if bom.Metadata.Tools.Components == nil {
		bom.Metadata.Tools.Components = &[]cdx.Component{tool}
		return
	}
	comps := append(*bom.Metadata.Tools.Components, tool)
	bom.Metadata.Tools.Components = &comps
}
