package soap

import (
	"encoding/xml"
	"fmt"
	"io"
)

// Fault codes, qualified with the envelope prefix written by this package.
const (
	FaultClient = "soap:Client"
	FaultServer = "soap:Server"
)

var faultName = xml.Name{Space: EnvelopeNS, Local: "Fault"}

// Fault is a SOAP 1.1 fault. Handlers return one to control the fault code
// sent to the caller; Client.Call returns one when the server faults.
type Fault struct {
	Code   string `xml:"faultcode"`
	String string `xml:"faultstring"`
}

func (f *Fault) Error() string {
	return fmt.Sprintf("soap fault %s: %s", f.Code, f.String)
}

// ClientFault reports a problem with the caller's message.
func ClientFault(format string, args ...interface{}) *Fault {
	return &Fault{Code: FaultClient, String: fmt.Sprintf(format, args...)}
}

// ServerFault reports a failure while processing a valid message.
func ServerFault(format string, args ...interface{}) *Fault {
	return &Fault{Code: FaultServer, String: fmt.Sprintf(format, args...)}
}

// writeFault writes f as a complete envelope. faultcode and faultstring stay
// unqualified as SOAP 1.1 requires.
func writeFault(w io.Writer, f *Fault) error {
	if err := writeEnvelopeStart(w); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `<soap:Fault><faultcode>`); err != nil {
		return err
	}
	if err := xml.EscapeText(w, []byte(f.Code)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `</faultcode><faultstring>`); err != nil {
		return err
	}
	if err := xml.EscapeText(w, []byte(f.String)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `</faultstring></soap:Fault>`); err != nil {
		return err
	}
	return writeEnvelopeEnd(w)
}
