package pdfexport

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

const (
	fontFamily  = "Helvetica"
	marginLeft  = 15.0
	labelWidth  = 65.0
	lineHeight  = 6.0
	signatureW  = 50.0
	dateLayout  = "January 2, 2006"
	footerLabel = "Signed electronically"
)

type Image struct {
	FileName string // extension defines the image type
	Body     []byte
}

type Field struct {
	Label string
	Value string
}

type DocumentData struct {
	Title        string
	CompanyName  string
	EmployeeName string
	Body         string // static policy text, signature-only documents
	Fields       []Field
	Signature    *Image
	TypedName    string
	SignedAt     *time.Time
}

// GenerateDocument - renders an onboarding document, the signature block is added when the document is signed
func GenerateDocument(data DocumentData) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateDocument panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(marginLeft, 15, marginLeft)
	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", 16)
	pdf.MultiCell(0, 8, tr(data.Title), "", "C", false)
	pdf.SetFont(fontFamily, "", 10)
	if data.CompanyName != "" {
		pdf.MultiCell(0, lineHeight, tr(data.CompanyName), "", "C", false)
	}
	pdf.Ln(4)
	if data.EmployeeName != "" {
		pdf.SetFont(fontFamily, "B", 11)
		pdf.CellFormat(labelWidth, lineHeight, "Employee", "", 0, "L", false, 0, "")
		pdf.SetFont(fontFamily, "", 11)
		pdf.MultiCell(0, lineHeight, tr(data.EmployeeName), "", "L", false)
		pdf.Ln(2)
	}
	if data.Body != "" {
		pdf.SetFont(fontFamily, "", 11)
		for _, paragraph := range strings.Split(data.Body, "\n") {
			pdf.MultiCell(0, lineHeight, tr(paragraph), "", "J", false)
			pdf.Ln(2)
		}
	}
	for _, field := range data.Fields {
		pdf.SetFont(fontFamily, "B", 10)
		pdf.CellFormat(labelWidth, lineHeight, tr(field.Label), "", 0, "L", false, 0, "")
		pdf.SetFont(fontFamily, "", 10)
		value := field.Value
		if value == "" {
			value = "-"
		}
		pdf.MultiCell(0, lineHeight, tr(value), "", "L", false)
	}
	if data.Signature != nil {
		if err = putSignature(pdf, tr, data); err != nil {
			return nil, err
		}
	}
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func putSignature(pdf *fpdf.Fpdf, tr func(string) string, data DocumentData) (err error) {
	options := fpdf.ImageOptions{}
	options.ImageType, err = GetImgType(data.Signature.FileName)
	if err != nil {
		return err
	}
	pdf.RegisterImageOptionsReader(data.Signature.FileName, options, bytes.NewReader(data.Signature.Body))
	if pdf.Error() != nil {
		return pdf.Error()
	}
	pdf.Ln(10)
	pdf.SetFont(fontFamily, "B", 10)
	pdf.CellFormat(0, lineHeight, footerLabel, "", 1, "L", false, 0, "")
	pdf.ImageOptions(data.Signature.FileName, marginLeft, pdf.GetY(), signatureW, 0, true, options, 0, "")
	pdf.SetFont(fontFamily, "", 10)
	if data.TypedName != "" {
		pdf.CellFormat(0, lineHeight, tr(data.TypedName), "T", 1, "L", false, 0, "")
	}
	if data.SignedAt != nil {
		pdf.CellFormat(0, lineHeight, fmt.Sprintf("Date: %s", data.SignedAt.Format(dateLayout)), "", 1, "L", false, 0, "")
	}
	return pdf.Error()
}

func GetImgType(fileName string) (string, error) {
	pos := strings.LastIndex(fileName, ".")
	if pos < 0 || pos == len(fileName)-1 {
		return "", errors.Errorf("unable to get the file extension: %s", fileName)
	}
	imgType := strings.ToLower(fileName[pos+1:])
	if imgType == "jpeg" {
		imgType = "jpg"
	}
	return imgType, nil
}
