package testutil

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// SubtitleRecordOptions contains the fields of one SearchSubtitles data record.
// Empty fields are left out of the record.
type SubtitleRecordOptions struct {
	Language     string // ISO639 code, "en", "es", etc.
	DownloadLink string
	FileName     string
	Format       string // "srt", "sub", etc.
}

// GenerateLoginResponse generates a LogIn methodResponse as sent by the OpenSubtitles XML-RPC API
func GenerateLoginResponse(status, token string) string {
	var sb strings.Builder
	sb.WriteString(xml.Header)
	sb.WriteString("<methodResponse><params><param><value><struct>\n")
	writeStringMember(&sb, "token", token)
	writeStringMember(&sb, "status", status)
	sb.WriteString("<member><name>seconds</name><value><double>0.004</double></value></member>\n")
	sb.WriteString("</struct></value></param></params></methodResponse>")
	return sb.String()
}

// GenerateSearchResponse generates a SearchSubtitles methodResponse whose data array carries records
func GenerateSearchResponse(status string, records []SubtitleRecordOptions) string {
	var sb strings.Builder
	sb.WriteString(xml.Header)
	sb.WriteString("<methodResponse><params><param><value><struct>\n")
	writeStringMember(&sb, "status", status)
	sb.WriteString("<member><name>data</name><value><array><data>\n")
	for _, rec := range records {
		sb.WriteString("<value><struct>\n")
		writeStringMember(&sb, "ISO639", rec.Language)
		writeStringMember(&sb, "SubDownloadLink", rec.DownloadLink)
		writeStringMember(&sb, "SubFileName", rec.FileName)
		writeStringMember(&sb, "SubFormat", rec.Format)
		sb.WriteString("</struct></value>\n")
	}
	sb.WriteString("</data></array></value></member>\n")
	sb.WriteString("</struct></value></param></params></methodResponse>")
	return sb.String()
}

// GenerateNoDataResponse generates the SearchSubtitles answer for a search without matches,
// where the catalog sends data as boolean false
func GenerateNoDataResponse(status string) string {
	var sb strings.Builder
	sb.WriteString(xml.Header)
	sb.WriteString("<methodResponse><params><param><value><struct>\n")
	writeStringMember(&sb, "status", status)
	sb.WriteString("<member><name>data</name><value><boolean>0</boolean></value></member>\n")
	sb.WriteString("</struct></value></param></params></methodResponse>")
	return sb.String()
}

// GenerateFaultResponse generates an XML-RPC fault
func GenerateFaultResponse(code int, message string) string {
	var sb strings.Builder
	sb.WriteString(xml.Header)
	sb.WriteString("<methodResponse><fault><value><struct>\n")
	fmt.Fprintf(&sb, "<member><name>faultCode</name><value><int>%d</int></value></member>\n", code)
	writeStringMember(&sb, "faultString", message)
	sb.WriteString("</struct></value></fault></methodResponse>")
	return sb.String()
}

func writeStringMember(sb *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(sb, "<member><name>%s</name><value><string>", name)
	_ = xml.EscapeText(sb, []byte(value))
	sb.WriteString("</string></value></member>\n")
}
