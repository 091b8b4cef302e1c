package soap

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/sirupsen/logrus"

	"librarygateway/internal/platform/metrics"
)

// Operation describes one registered request/response pair.
type Operation struct {
	Request  xml.Name
	Response xml.Name
}

// Name is the operation name published in the WSDL: the request element
// without its "Request" suffix.
func (o Operation) Name() string {
	return strings.TrimSuffix(o.Request.Local, "Request")
}

type handlerFunc func(ctx context.Context, dec *xml.Decoder, start xml.StartElement) (interface{}, error)

type route struct {
	op   Operation
	call handlerFunc
}

// Mux routes SOAP requests by the qualified name of the Body payload. Routes
// are registered before serving and never change afterwards.
type Mux struct {
	routes map[xml.Name]route
	order  []Operation
	logger logrus.FieldLogger
}

func NewMux(logger logrus.FieldLogger) *Mux {
	return &Mux{
		routes: make(map[xml.Name]route),
		logger: logger,
	}
}

// Handle registers fn for the payload element named by Req's XMLName field.
// Resp must carry an XMLName as well. It panics on a missing XMLName or a
// duplicate registration, like http.ServeMux does for patterns.
func Handle[Req, Resp any](m *Mux, fn func(context.Context, *Req) (*Resp, error)) {
	op := Operation{
		Request:  elementName(reflect.TypeOf((*Req)(nil)).Elem()),
		Response: elementName(reflect.TypeOf((*Resp)(nil)).Elem()),
	}
	if _, dup := m.routes[op.Request]; dup {
		panic(fmt.Sprintf("soap: duplicate registration for {%s}%s", op.Request.Space, op.Request.Local))
	}

	m.routes[op.Request] = route{
		op: op,
		call: func(ctx context.Context, dec *xml.Decoder, start xml.StartElement) (interface{}, error) {
			req := new(Req)
			if err := dec.DecodeElement(req, &start); err != nil {
				return nil, ClientFault("invalid %s: %v", start.Name.Local, err)
			}
			return fn(ctx, req)
		},
	}
	m.order = append(m.order, op)
}

func elementName(t reflect.Type) xml.Name {
	f, ok := t.FieldByName("XMLName")
	if !ok || f.Type != reflect.TypeOf(xml.Name{}) {
		panic(fmt.Sprintf("soap: %s has no XMLName field", t))
	}
	tag := strings.SplitN(f.Tag.Get("xml"), ",", 2)[0]
	if i := strings.LastIndex(tag, " "); i >= 0 {
		return xml.Name{Space: tag[:i], Local: tag[i+1:]}
	}
	if tag == "" {
		panic(fmt.Sprintf("soap: %s XMLName has no element name", t))
	}
	return xml.Name{Local: tag}
}

// Operations returns the registered operations in registration order.
func (m *Mux) Operations() []Operation {
	out := make([]Operation, len(m.order))
	copy(out, m.order)
	return out
}

func (m *Mux) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	resp, opName, err := m.dispatch(r.Context(), r)
	if err != nil {
		var fault *Fault
		if !errors.As(err, &fault) {
			m.logger.WithError(err).WithField("operation", opName).Error("soap operation failed")
			fault = ServerFault("internal server error")
		} else {
			m.logger.WithFields(logrus.Fields{
				"operation": opName,
				"faultcode": fault.Code,
			}).Debug(fault.String)
		}
		metrics.RecordSOAPOperation(opName, "fault")
		m.writeFault(w, fault)
		return
	}

	var buf bytes.Buffer
	if err := writeEnvelope(&buf, resp); err != nil {
		m.logger.WithError(err).WithField("operation", opName).Error("soap response encoding failed")
		metrics.RecordSOAPOperation(opName, "fault")
		m.writeFault(w, ServerFault("internal server error"))
		return
	}

	metrics.RecordSOAPOperation(opName, "ok")
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (m *Mux) dispatch(ctx context.Context, r *http.Request) (interface{}, string, error) {
	dec, start, err := readPayload(r.Body)
	if err != nil {
		return nil, "", ClientFault("%v", err)
	}

	rt, ok := m.routes[start.Name]
	if !ok {
		return nil, "", ClientFault("%v: {%s}%s", ErrNoOperation, start.Name.Space, start.Name.Local)
	}

	resp, err := rt.call(ctx, dec, start)
	return resp, rt.op.Name(), err
}

func (m *Mux) writeFault(w http.ResponseWriter, f *Fault) {
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(http.StatusInternalServerError)
	if err := writeFault(w, f); err != nil {
		m.logger.WithError(err).Warn("soap fault write failed")
	}
}
