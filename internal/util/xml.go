package util

import (
	"encoding/xml"
	"fmt"
	"os"
)

// SiteFile models a Hadoop-style *-site.xml document, the format
// hive-site.xml uses: a flat <configuration> element holding
// name/value <property> pairs.
type SiteFile struct {
	XMLName    xml.Name       `xml:"configuration"`
	Properties []SiteProperty `xml:"property"`
}

// SiteProperty is one name/value pair in a site file.
type SiteProperty struct {
	Name  string `xml:"name"`
	Value string `xml:"value"`
}

// ReadSiteXML loads and parses a site file from disk.
func ReadSiteXML(path string) (*SiteFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	site := &SiteFile{}
	if err := xml.Unmarshal(data, site); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return site, nil
}

// Lookup returns the value of the first property with the given name.
// Hadoop resolves duplicate properties first-wins, so Lookup does too.
// Absent properties yield the empty string.
func (f *SiteFile) Lookup(name string) string {
	for _, prop := range f.Properties {
		if prop.Name == name {
			return prop.Value
		}
	}
	return ""
}

// Put updates the named property in place, appending it when absent.
func (f *SiteFile) Put(name, value string) {
	for i := range f.Properties {
		if f.Properties[i].Name == name {
			f.Properties[i].Value = value
			return
		}
	}
	f.Properties = append(f.Properties, SiteProperty{Name: name, Value: value})
}

// Write renders the document with the standard XML header and two-space
// indents, replacing whatever is at path.
func (f *SiteFile) Write(path string) error {
	body, err := xml.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal site file: %w", err)
	}

	if err := os.WriteFile(path, []byte(xml.Header+string(body)+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
