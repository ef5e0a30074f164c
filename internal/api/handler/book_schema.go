package handler

import (
	"encoding/xml"
	"time"
)

type createBookRequest struct {
	Title      string     `json:"title"       xml:"title"       yaml:"title"       validate:"required"`
	Author     string     `json:"author"      xml:"author"      yaml:"author"      validate:"required"`
	LaunchDate *time.Time `json:"launchDate" xml:"launchDate" yaml:"launchDate"`
	Price      float64    `json:"price"       xml:"price"       yaml:"price"       validate:"required,gt=0"`
}

type updateBookRequest struct {
	ID         int64      `json:"id"          xml:"id"          yaml:"id"          validate:"required,gt=0"`
	Title      string     `json:"title"       xml:"title"       yaml:"title"       validate:"required"`
	Author     string     `json:"author"      xml:"author"      yaml:"author"      validate:"required"`
	LaunchDate *time.Time `json:"launchDate" xml:"launchDate" yaml:"launchDate"`
	Price      float64    `json:"price"       xml:"price"       yaml:"price"       validate:"required,gt=0"`
}

type bookVO struct {
	XMLName    xml.Name   `json:"-" xml:"book" yaml:"-"`
	ID         int64      `json:"id" xml:"id" yaml:"id"`
	Title      string     `json:"title" xml:"title" yaml:"title"`
	Author     string     `json:"author" xml:"author" yaml:"author"`
	LaunchDate *time.Time `json:"launchDate,omitempty" xml:"launchDate,omitempty" yaml:"launchDate,omitempty"`
	Price      float64    `json:"price" xml:"price" yaml:"price"`
	Links      []link     `json:"links,omitempty" xml:"links>link,omitempty" yaml:"links,omitempty"`
}

type bookPageVO struct {
	XMLName xml.Name     `json:"-" xml:"bookPage" yaml:"-"`
	Content []bookVO     `json:"content" xml:"content>book" yaml:"content"`
	Page    pageMetadata `json:"page" xml:"page" yaml:"page"`
	Links   []link       `json:"links" xml:"links>link" yaml:"links"`
}
