package opensubtitles

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

// methodCall is the XML-RPC request envelope
type methodCall struct {
	XMLName    xml.Name `xml:"methodCall"`
	MethodName string   `xml:"methodName"`
	Params     []param  `xml:"params>param"`
}

// methodResponse is the XML-RPC response envelope; exactly one of Params or Fault is set
type methodResponse struct {
	XMLName xml.Name `xml:"methodResponse"`
	Params  []param  `xml:"params>param"`
	Fault   *value   `xml:"fault>value"`
}

type param struct {
	Value value `xml:"value"`
}

// value is one XML-RPC value. At most one typed field is set; a value with
// none of them is an untyped string held in Text.
type value struct {
	String   *string      `xml:"string"`
	Int      *string      `xml:"int"`
	I4       *string      `xml:"i4"`
	Double   *string      `xml:"double"`
	Boolean  *string      `xml:"boolean"`
	Base64   *string      `xml:"base64"`
	DateTime *string      `xml:"dateTime.iso8601"`
	Struct   *structValue `xml:"struct"`
	Array    *arrayValue  `xml:"array"`
	Nil      *struct{}    `xml:"nil"`
	Text     string       `xml:",chardata"`
}

type structValue struct {
	Members []member `xml:"member"`
}

type member struct {
	Name  string `xml:"name"`
	Value value  `xml:"value"`
}

type arrayValue struct {
	Data []value `xml:"data>value"`
}

func stringValue(s string) value {
	return value{String: &s}
}

func intValue(i int) value {
	s := strconv.Itoa(i)
	return value{Int: &s}
}

// doubleValue carries integers wider than the 32-bit XML-RPC int, such as file sizes.
func doubleValue(u uint64) value {
	s := strconv.FormatUint(u, 10)
	return value{Double: &s}
}

func structOf(members ...member) value {
	return value{Struct: &structValue{Members: members}}
}

func arrayOf(values ...value) value {
	return value{Array: &arrayValue{Data: values}}
}

func (v value) untyped() bool {
	return v.String == nil && v.Int == nil && v.I4 == nil && v.Double == nil && v.Boolean == nil &&
		v.Base64 == nil && v.DateTime == nil && v.Struct == nil && v.Array == nil && v.Nil == nil
}

// asString returns the value of a string (typed or untyped) XML-RPC value.
func (v value) asString() (string, bool) {
	if v.String != nil {
		return *v.String, true
	}
	if v.untyped() {
		return v.Text, true
	}
	return "", false
}

func (v value) asInt() (int, bool) {
	raw := v.Int
	if raw == nil {
		raw = v.I4
	}
	if raw == nil {
		return 0, false
	}
	i, err := strconv.Atoi(strings.TrimSpace(*raw))
	if err != nil {
		return 0, false
	}
	return i, true
}

func (v value) asBool() (bool, bool) {
	if v.Boolean == nil {
		return false, false
	}
	switch strings.TrimSpace(*v.Boolean) {
	case "1":
		return true, true
	case "0":
		return false, true
	}
	return false, false
}

func (v value) asArray() ([]value, bool) {
	if v.Array == nil {
		return nil, false
	}
	return v.Array.Data, true
}

// field returns the member called name of a struct value.
func (v value) field(name string) (value, bool) {
	if v.Struct == nil {
		return value{}, false
	}
	for _, m := range v.Struct.Members {
		if m.Name == name {
			return m.Value, true
		}
	}
	return value{}, false
}

// stringField returns a non-empty string member of a struct value.
func (v value) stringField(name string) (string, bool) {
	f, ok := v.field(name)
	if !ok {
		return "", false
	}
	s, ok := f.asString()
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

func encodeCall(method string, params ...value) ([]byte, error) {
	call := methodCall{MethodName: method}
	for _, p := range params {
		call.Params = append(call.Params, param{Value: p})
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	if err := xml.NewEncoder(&buf).Encode(call); err != nil {
		return nil, fmt.Errorf("failed to encode %s call: %w", method, err)
	}
	return buf.Bytes(), nil
}

// faultError is an XML-RPC fault response
type faultError struct {
	Code    int
	Message string
}

func (f *faultError) Error() string {
	return fmt.Sprintf("%d %s", f.Code, f.Message)
}

// decodeResponse parses a methodResponse, converting declared non-UTF-8 encodings on the fly.
func decodeResponse(r io.Reader) (*methodResponse, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel

	var resp methodResponse
	if err := decoder.Decode(&resp); err != nil {
		return nil, err
	}

	if resp.Fault != nil {
		fault := &faultError{}
		fault.Code, _ = mustField(*resp.Fault, "faultCode").asInt()
		fault.Message, _ = mustField(*resp.Fault, "faultString").asString()
		return nil, fault
	}
	return &resp, nil
}

func mustField(v value, name string) value {
	f, _ := v.field(name)
	return f
}
