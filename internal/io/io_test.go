package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cdx "github.com/CycloneDX/cyclonedx-go"
)

func minimalBOM() *cdx.BOM {
	bom := cdx.NewBOM()
	bom.SpecVersion = cdx.SpecVersion1_6
	bom.Metadata = &cdx.Metadata{
		Component: &cdx.Component{
			Type: cdx.ComponentTypeData,
			Name: "dataidea-catalog",
		},
	}
	return bom
}

func TestParseSpecVersion(t *testing.T) {
	tcs := []struct {
		in   string
		want cdx.SpecVersion
		ok   bool
	}{
		{"1.0", cdx.SpecVersion1_0, true},
		{"1.4", cdx.SpecVersion1_4, true},
		{"1.5", cdx.SpecVersion1_5, true},
		{" 1.6 ", cdx.SpecVersion1_6, true},
		{"", cdx.SpecVersion1_6, false},
		{"1.7", cdx.SpecVersion1_6, false},
		{"nope", cdx.SpecVersion1_6, false},
	}

	for _, tc := range tcs {
		got, ok := ParseSpecVersion(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseSpecVersion(%q) = (%v,%v), want (%v,%v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestResolveBOMFormat(t *testing.T) {
	tcs := []struct {
		path, format, want string
		wantErr            bool
	}{
		{"out/catalog.json", "auto", "json", false},
		{"out/catalog.xml", "", "xml", false},
		{"catalog", "auto", "json", false},
		{"catalog.xml", "xml", "xml", false},
		{"catalog.json", "xml", "", true},
		{"catalog.json", "toml", "", true},
		{"", "xml", "xml", false},
	}
	for _, tc := range tcs {
		got, err := ResolveBOMFormat(tc.path, tc.format)
		if (err != nil) != tc.wantErr {
			t.Fatalf("ResolveBOMFormat(%q,%q) err=%v, wantErr=%v", tc.path, tc.format, err, tc.wantErr)
		}
		if got != tc.want {
			t.Fatalf("ResolveBOMFormat(%q,%q) = %q, want %q", tc.path, tc.format, got, tc.want)
		}
	}
}

func TestWriteBOM_RoundTrip(t *testing.T) {
	for _, name := range []string{"catalog.json", "catalog.xml"} {
		t.Run(name, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), "nested", name)
			if err := WriteBOM(minimalBOM(), p, "auto", "1.5"); err != nil {
				t.Fatalf("WriteBOM: %v", err)
			}
			got, err := ReadBOM(p, "auto")
			if err != nil {
				t.Fatalf("ReadBOM: %v", err)
			}
			if got.Metadata == nil || got.Metadata.Component == nil || got.Metadata.Component.Name != "dataidea-catalog" {
				t.Fatalf("unexpected metadata after round trip: %#v", got.Metadata)
			}
		})
	}
}

func TestWriteBOM_Errors(t *testing.T) {
	dir := t.TempDir()
	if err := WriteBOM(minimalBOM(), filepath.Join(dir, "x.json"), "xml", ""); err == nil {
		t.Fatalf("expected extension mismatch error")
	}
	if err := WriteBOM(minimalBOM(), filepath.Join(dir, "x.json"), "json", "9.9"); err == nil {
		t.Fatalf("expected unsupported spec error")
	}
}

func TestReadBOM_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := ReadBOM(filepath.Join(dir, "missing.json"), "auto"); err == nil {
		t.Fatalf("expected error for missing file")
	}

	p := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(p, []byte(`{`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := ReadBOM(p, "json"); err == nil {
		t.Fatalf("expected decode error for invalid JSON")
	}
}

func TestEncodeBOM_ToWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeBOM(&buf, minimalBOM(), "json", ""); err != nil {
		t.Fatalf("EncodeBOM: %v", err)
	}
	if !strings.Contains(buf.String(), `"bomFormat": "CycloneDX"`) {
		t.Fatalf("expected CycloneDX JSON, got %s", buf.String())
	}
}

func TestEncodeBOM_StripsTagsBelow16(t *testing.T) {
	tags := []string{"weather"}
	bom := minimalBOM()
	bom.Components = &[]cdx.Component{{Type: cdx.ComponentTypeData, Name: "rainfall", Tags: &tags}}

	var old bytes.Buffer
	if err := EncodeBOM(&old, bom, "json", "1.5"); err != nil {
		t.Fatalf("EncodeBOM 1.5: %v", err)
	}
	if strings.Contains(old.String(), `"tags"`) {
		t.Fatalf("expected tags stripped for 1.5, got %s", old.String())
	}

	bom.Components = &[]cdx.Component{{Type: cdx.ComponentTypeData, Name: "rainfall", Tags: &tags}}
	var cur bytes.Buffer
	if err := EncodeBOM(&cur, bom, "json", "1.6"); err != nil {
		t.Fatalf("EncodeBOM 1.6: %v", err)
	}
	if !strings.Contains(cur.String(), `"tags"`) {
		t.Fatalf("expected tags kept for 1.6, got %s", cur.String())
	}
}

type record struct {
	Slug  string `json:"slug" yaml:"slug"`
	Count int    `json:"download_count" yaml:"download_count"`
}

func TestEncodeRecords(t *testing.T) {
	v := []record{{Slug: "rainfall", Count: 3}}

	var js bytes.Buffer
	if err := EncodeRecords(&js, "json", v); err != nil {
		t.Fatalf("json: %v", err)
	}
	if !strings.Contains(js.String(), `"download_count": 3`) {
		t.Fatalf("unexpected json: %s", js.String())
	}

	var ym bytes.Buffer
	if err := EncodeRecords(&ym, "YAML", v); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if !strings.Contains(ym.String(), "- slug: rainfall") || !strings.Contains(ym.String(), "download_count: 3") {
		t.Fatalf("unexpected yaml: %s", ym.String())
	}

	if err := EncodeRecords(&js, "text", v); err == nil {
		t.Fatalf("expected error for text format")
	}
}
