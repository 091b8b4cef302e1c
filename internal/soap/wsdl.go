package soap

import (
	"bytes"
	"encoding/xml"
	"io"
	"net/http"
	"strings"
	"text/template"

	"github.com/sirupsen/logrus"
)

// Definition describes the service published as WSDL.
type Definition struct {
	Service         string
	PortType        string
	TargetNamespace string
	// Schema is an xs:schema element, without an XML declaration, embedded
	// into wsdl:types and served on its own by SchemaHandler.
	Schema string
	// Path is the SOAP endpoint path appended to the request host to build
	// the soap:address location.
	Path string
}

type wsdlData struct {
	Definition
	Address    string
	Operations []Operation
}

var wsdlTemplate = template.Must(template.New("wsdl").Funcs(template.FuncMap{
	"xml": func(s string) (string, error) {
		var b strings.Builder
		err := xml.EscapeText(&b, []byte(s))
		return b.String(), err
	},
}).Parse(`<?xml version="1.0" encoding="UTF-8"?>
<wsdl:definitions xmlns:wsdl="http://schemas.xmlsoap.org/wsdl/" xmlns:soap="http://schemas.xmlsoap.org/wsdl/soap/" xmlns:xs="http://www.w3.org/2001/XMLSchema" xmlns:tns="{{xml .TargetNamespace}}" targetNamespace="{{xml .TargetNamespace}}">
  <wsdl:types>
{{.Schema}}
  </wsdl:types>
{{- range .Operations}}
  <wsdl:message name="{{.Request.Local}}">
    <wsdl:part element="tns:{{.Request.Local}}" name="{{.Request.Local}}"/>
  </wsdl:message>
  <wsdl:message name="{{.Response.Local}}">
    <wsdl:part element="tns:{{.Response.Local}}" name="{{.Response.Local}}"/>
  </wsdl:message>
{{- end}}
  <wsdl:portType name="{{.PortType}}">
{{- range .Operations}}
    <wsdl:operation name="{{.Name}}">
      <wsdl:input message="tns:{{.Request.Local}}" name="{{.Request.Local}}"/>
      <wsdl:output message="tns:{{.Response.Local}}" name="{{.Response.Local}}"/>
    </wsdl:operation>
{{- end}}
  </wsdl:portType>
  <wsdl:binding name="{{.PortType}}Soap11" type="tns:{{.PortType}}">
    <soap:binding style="document" transport="http://schemas.xmlsoap.org/soap/http"/>
{{- range .Operations}}
    <wsdl:operation name="{{.Name}}">
      <soap:operation soapAction=""/>
      <wsdl:input name="{{.Request.Local}}">
        <soap:body use="literal"/>
      </wsdl:input>
      <wsdl:output name="{{.Response.Local}}">
        <soap:body use="literal"/>
      </wsdl:output>
    </wsdl:operation>
{{- end}}
  </wsdl:binding>
  <wsdl:service name="{{.Service}}">
    <wsdl:port binding="tns:{{.PortType}}Soap11" name="{{.PortType}}Soap11">
      <soap:address location="{{xml .Address}}"/>
    </wsdl:port>
  </wsdl:service>
</wsdl:definitions>
`))

// Render writes the WSDL for ops with the given endpoint location.
func (d Definition) Render(w io.Writer, location string, ops []Operation) error {
	return wsdlTemplate.Execute(w, wsdlData{Definition: d, Address: location, Operations: ops})
}

// Location builds the endpoint address from the host the request was sent to.
func (d Definition) Location(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		scheme = proto
	}
	return scheme + "://" + r.Host + d.Path
}

// WSDLHandler serves the WSDL for the operations registered on m.
func (d Definition) WSDLHandler(m *Mux, logger logrus.FieldLogger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if err := d.Render(&buf, d.Location(r), m.Operations()); err != nil {
			logger.WithError(err).Error("wsdl render failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", ContentType)
		_, _ = w.Write(buf.Bytes())
	})
}

// SchemaHandler serves the XSD alone.
func (d Definition) SchemaHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", ContentType)
		_, _ = io.WriteString(w, xml.Header+d.Schema)
	})
}
