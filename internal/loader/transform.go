package loader

import (
	"github.com/kolah/swagscrape/swagger"
	"github.com/pb33f/libopenapi/datamodel/high/base"
	v2 "github.com/pb33f/libopenapi/datamodel/high/v2"
)

func transform(doc *v2.Swagger) *swagger.Document {
	out := swagger.New(transformInfo(doc.Info))
	out.Host = doc.Host
	out.BasePath = doc.BasePath
	if len(doc.Schemes) > 0 {
		out.Schemes = doc.Schemes
	}
	if len(doc.Consumes) > 0 {
		out.Consumes = doc.Consumes
	}
	if len(doc.Produces) > 0 {
		out.Produces = doc.Produces
	}
	return out
}

func transformInfo(info *base.Info) swagger.Info {
	if info == nil {
		return swagger.Info{}
	}

	out := swagger.Info{
		Title:          info.Title,
		Description:    info.Description,
		Version:        info.Version,
		TermsOfService: info.TermsOfService,
	}
	if c := info.Contact; c != nil {
		out.Contact = &swagger.Contact{Name: c.Name, URL: c.URL, Email: c.Email}
	}
	if l := info.License; l != nil {
		out.License = &swagger.License{Name: l.Name, URL: l.URL}
	}
	return out
}
