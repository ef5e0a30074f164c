package handler

import "encoding/xml"

// Request types carry validation tags; response VOs carry the tags for
// all three negotiated encodings plus the HATEOAS link list. The two
// are kept separate so the wire contract is not coupled to internal
// service changes.

type createPersonRequest struct {
	FirstName string `json:"firstName" xml:"firstName" yaml:"firstName" validate:"required"`
	LastName  string `json:"lastName"  xml:"lastName"  yaml:"lastName"  validate:"required"`
	Address   string `json:"address"    xml:"address"    yaml:"address"    validate:"required"`
	Gender    string `json:"gender"     xml:"gender"     yaml:"gender"     validate:"required"`
}

type updatePersonRequest struct {
	ID        int64  `json:"id"         xml:"id"         yaml:"id"         validate:"required,gt=0"`
	FirstName string `json:"firstName" xml:"firstName" yaml:"firstName" validate:"required"`
	LastName  string `json:"lastName"  xml:"lastName"  yaml:"lastName"  validate:"required"`
	Address   string `json:"address"    xml:"address"    yaml:"address"    validate:"required"`
	Gender    string `json:"gender"     xml:"gender"     yaml:"gender"     validate:"required"`
}

type personVO struct {
	XMLName   xml.Name `json:"-" xml:"person" yaml:"-"`
	ID        int64    `json:"id" xml:"id" yaml:"id"`
	FirstName string   `json:"firstName" xml:"firstName" yaml:"firstName"`
	LastName  string   `json:"lastName" xml:"lastName" yaml:"lastName"`
	Address   string   `json:"address" xml:"address" yaml:"address"`
	Gender    string   `json:"gender" xml:"gender" yaml:"gender"`
	Enabled   bool     `json:"enabled" xml:"enabled" yaml:"enabled"`
	Links     []link   `json:"links,omitempty" xml:"links>link,omitempty" yaml:"links,omitempty"`
}

type personPageVO struct {
	XMLName xml.Name     `json:"-" xml:"personPage" yaml:"-"`
	Content []personVO   `json:"content" xml:"content>person" yaml:"content"`
	Page    pageMetadata `json:"page" xml:"page" yaml:"page"`
	Links   []link       `json:"links" xml:"links>link" yaml:"links"`
}
