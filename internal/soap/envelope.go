// Package soap implements the SOAP 1.1 document/literal transport used by the
// user service: envelope codec, operation dispatch, faults, a client and WSDL
// publication.
package soap

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

const (
	// EnvelopeNS is the SOAP 1.1 envelope namespace.
	EnvelopeNS = "http://schemas.xmlsoap.org/soap/envelope/"
	// ContentType is the media type of SOAP 1.1 messages.
	ContentType = "text/xml; charset=utf-8"
)

var (
	// ErrMalformedEnvelope is returned when a message is not a SOAP 1.1 envelope
	// with a non-empty body.
	ErrMalformedEnvelope = errors.New("malformed SOAP envelope")
	// ErrNoOperation is returned when no handler is registered for a payload.
	ErrNoOperation = errors.New("no operation registered for payload")

	errEndElement = errors.New("end element")
)

// nextStart returns the next start element at the current depth. It fails with
// errEndElement when the enclosing element closes first.
func nextStart(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err != nil {
			return xml.StartElement{}, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return t, nil
		case xml.EndElement:
			return xml.StartElement{}, errEndElement
		}
	}
}

// readPayload positions dec on the first child of soap:Body and returns its
// start element. Namespace prefixes are resolved by the decoder, so the
// returned name always carries the full namespace URI.
func readPayload(r io.Reader) (*xml.Decoder, xml.StartElement, error) {
	dec := xml.NewDecoder(r)

	env, err := nextStart(dec)
	if err != nil {
		return nil, xml.StartElement{}, fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}
	if env.Name.Space != EnvelopeNS || env.Name.Local != "Envelope" {
		return nil, xml.StartElement{}, fmt.Errorf("%w: root element {%s}%s", ErrMalformedEnvelope, env.Name.Space, env.Name.Local)
	}

	for {
		el, err := nextStart(dec)
		if err != nil {
			return nil, xml.StartElement{}, fmt.Errorf("%w: missing Body", ErrMalformedEnvelope)
		}
		if el.Name.Space != EnvelopeNS {
			return nil, xml.StartElement{}, fmt.Errorf("%w: unexpected element %s", ErrMalformedEnvelope, el.Name.Local)
		}

		switch el.Name.Local {
		case "Header":
			if err := dec.Skip(); err != nil {
				return nil, xml.StartElement{}, fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
			}
		case "Body":
			payload, err := nextStart(dec)
			if err != nil {
				return nil, xml.StartElement{}, fmt.Errorf("%w: empty Body", ErrMalformedEnvelope)
			}
			return dec, payload, nil
		default:
			return nil, xml.StartElement{}, fmt.Errorf("%w: unexpected element %s", ErrMalformedEnvelope, el.Name.Local)
		}
	}
}

func writeEnvelopeStart(w io.Writer) error {
	_, err := io.WriteString(w, xml.Header+`<soap:Envelope xmlns:soap="`+EnvelopeNS+`"><soap:Body>`)
	return err
}

func writeEnvelopeEnd(w io.Writer) error {
	_, err := io.WriteString(w, `</soap:Body></soap:Envelope>`)
	return err
}

// writeEnvelope wraps the XML encoding of payload in a SOAP envelope.
func writeEnvelope(w io.Writer, payload interface{}) error {
	if err := writeEnvelopeStart(w); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	return writeEnvelopeEnd(w)
}
