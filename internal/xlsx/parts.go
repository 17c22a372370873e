// Package xlsx writes a minimal but valid XLSX workbook by hand: each
// package part is rendered as XML text and the parts are assembled
// into a zip container with the member names and cross-references a
// spreadsheet reader resolves. No styling beyond a single default
// style record, no formulas, no shared strings; every text cell is an
// inline string.
package xlsx

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Row is one sheet row. Cells may be string, int, or float64; a nil
// cell is omitted from the output entirely.
type Row []any

// Sheet is one worksheet: a name, a header row, and data rows.
type Sheet struct {
	Name   string
	Header Row
	Rows   []Row
}

// escaper covers the five reserved XML characters.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

const xmlDecl = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`

// formatCell renders one cell at the given A1 reference. Numbers
// become numeric cells, text becomes an inline string with whitespace
// preserved, nil renders nothing.
func formatCell(ref string, value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case int:
		return fmt.Sprintf(`<c r="%s"><v>%s</v></c>`, ref, strconv.Itoa(v))
	case float64:
		return fmt.Sprintf(`<c r="%s"><v>%s</v></c>`, ref, strconv.FormatFloat(v, 'f', -1, 64))
	default:
		text := escaper.Replace(fmt.Sprint(v))
		return fmt.Sprintf(`<c r="%s" t="inlineStr"><is><t xml:space="preserve">%s</t></is></c>`, ref, text)
	}
}

// sheetXML renders one worksheet part. The header occupies row 1 and
// data rows follow, all 1-based.
func sheetXML(sheet Sheet) string {
	var b strings.Builder
	b.WriteString(xmlDecl + "\n")
	b.WriteString(`<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" ` +
		`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">` + "\n")
	b.WriteString("<sheetData>\n")

	all := append([]Row{sheet.Header}, sheet.Rows...)
	for rowIdx, row := range all {
		b.WriteString(fmt.Sprintf(`<row r="%d">`, rowIdx+1))
		for colIdx, value := range row {
			b.WriteString(formatCell(CellRef(colIdx+1, rowIdx+1), value))
		}
		b.WriteString("</row>\n")
	}

	b.WriteString("</sheetData>\n</worksheet>")
	return b.String()
}

// workbookXML renders the workbook manifest: one sheet element per
// worksheet with sequential sheetIds and relationship ids.
func workbookXML(sheetNames []string) string {
	var b strings.Builder
	b.WriteString(xmlDecl + "\n")
	b.WriteString(`<workbook xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" ` +
		`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">` + "\n<sheets>\n")
	for i, name := range sheetNames {
		b.WriteString(fmt.Sprintf(`<sheet name="%s" sheetId="%d" r:id="rId%d"/>`+"\n", escaper.Replace(name), i+1, i+1))
	}
	b.WriteString("</sheets>\n</workbook>")
	return b.String()
}

// workbookRelsXML links the workbook to its worksheet parts and the
// style part. Relationship ids continue the sequence used by
// workbookXML, with styles taking the id after the last sheet.
func workbookRelsXML(sheetCount int) string {
	var b strings.Builder
	b.WriteString(xmlDecl + "\n")
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` + "\n")
	for i := 1; i <= sheetCount; i++ {
		b.WriteString(fmt.Sprintf(`<Relationship Id="rId%d" `+
			`Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" `+
			`Target="worksheets/sheet%d.xml"/>`+"\n", i, i))
	}
	b.WriteString(fmt.Sprintf(`<Relationship Id="rId%d" `+
		`Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" `+
		`Target="styles.xml"/>`+"\n", sheetCount+1))
	b.WriteString("</Relationships>")
	return b.String()
}

// stylesXML renders the minimal style sheet: one font, one fill, one
// border, one cell format. Readers require the part to exist even
// when nothing is styled.
func stylesXML() string {
	return strings.Join([]string{
		xmlDecl,
		`<styleSheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">`,
		`<fonts count="1"><font><sz val="11"/><name val="Calibri"/></font></fonts>`,
		`<fills count="1"><fill><patternFill patternType="none"/></fill></fills>`,
		`<borders count="1"><border><left/><right/><top/><bottom/><diagonal/></border></borders>`,
		`<cellStyleXfs count="1"><xf numFmtId="0" fontId="0" fillId="0" borderId="0"/></cellStyleXfs>`,
		`<cellXfs count="1"><xf numFmtId="0" fontId="0" fillId="0" borderId="0" xfId="0"/></cellXfs>`,
		`<cellStyles count="1"><cellStyle name="Normal" xfId="0" builtinId="0"/></cellStyles>`,
		`</styleSheet>`,
	}, "\n")
}

// contentTypesXML declares the media type of every part in the
// package, one Override per worksheet.
func contentTypesXML(sheetCount int) string {
	var b strings.Builder
	b.WriteString(xmlDecl + "\n")
	b.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` + "\n")
	b.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` + "\n")
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>` + "\n")
	b.WriteString(`<Override PartName="/xl/workbook.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"/>` + "\n")
	for i := 1; i <= sheetCount; i++ {
		b.WriteString(fmt.Sprintf(`<Override PartName="/xl/worksheets/sheet%d.xml" `+
			`ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"/>`+"\n", i))
	}
	b.WriteString(`<Override PartName="/xl/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.styles+xml"/>` + "\n")
	b.WriteString(`<Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>` + "\n")
	b.WriteString(`<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>` + "\n")
	b.WriteString("</Types>")
	return b.String()
}

// packageRelsXML renders the package-level relationships: the
// workbook plus the two document property parts.
func packageRelsXML() string {
	return strings.Join([]string{
		xmlDecl,
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`,
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="xl/workbook.xml"/>`,
		`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>`,
		`<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties" Target="docProps/app.xml"/>`,
		`</Relationships>`,
	}, "\n")
}

// appXML renders the extended properties part, including the
// worksheet name vector some readers use to enumerate sheets.
func appXML(sheetNames []string) string {
	var b strings.Builder
	b.WriteString(xmlDecl + "\n")
	b.WriteString(`<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties" ` +
		`xmlns:vt="http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes">` + "\n")
	b.WriteString("<Application>timetrail</Application>\n")
	b.WriteString("<DocSecurity>0</DocSecurity>\n")
	b.WriteString("<ScaleCrop>false</ScaleCrop>\n")
	b.WriteString("<HeadingPairs>\n")
	b.WriteString(`<vt:vector size="2" baseType="variant">` + "\n")
	b.WriteString("<vt:variant><vt:lpstr>Worksheets</vt:lpstr></vt:variant>\n")
	b.WriteString(fmt.Sprintf("<vt:variant><vt:i4>%d</vt:i4></vt:variant>\n", len(sheetNames)))
	b.WriteString("</vt:vector>\n</HeadingPairs>\n<TitlesOfParts>\n")
	b.WriteString(fmt.Sprintf(`<vt:vector size="%d" baseType="lpstr">`+"\n", len(sheetNames)))
	for _, name := range sheetNames {
		b.WriteString(fmt.Sprintf("<vt:lpstr>%s</vt:lpstr>\n", escaper.Replace(name)))
	}
	b.WriteString("</vt:vector>\n</TitlesOfParts>\n</Properties>")
	return b.String()
}

// coreXML renders the core document properties with creation and
// modification timestamps in W3C datetime form.
func coreXML(now time.Time) string {
	stamp := now.UTC().Format("2006-01-02T15:04:05Z")
	return strings.Join([]string{
		xmlDecl,
		`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" ` +
			`xmlns:dc="http://purl.org/dc/elements/1.1/" ` +
			`xmlns:dcterms="http://purl.org/dc/terms/" ` +
			`xmlns:dcmitype="http://purl.org/dc/dcmitype/" ` +
			`xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">`,
		`<dc:creator>timetrail</dc:creator>`,
		`<cp:lastModifiedBy>timetrail</cp:lastModifiedBy>`,
		fmt.Sprintf(`<dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>`, stamp),
		fmt.Sprintf(`<dcterms:modified xsi:type="dcterms:W3CDTF">%s</dcterms:modified>`, stamp),
		`</cp:coreProperties>`,
	}, "\n")
}
