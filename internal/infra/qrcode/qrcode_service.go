package qrcode

import (
	"fmt"
	"strings"

	"directory/internal/domain/entity"
	"directory/internal/domain/service"
	"directory/internal/errors"

	"github.com/skip2/go-qrcode"
)

// recoveryLevels maps the ISO 18004 level letters onto go-qrcode levels.
var recoveryLevels = map[string]qrcode.RecoveryLevel{
	"L": qrcode.Low,
	"M": qrcode.Medium,
	"Q": qrcode.High,
	"H": qrcode.Highest,
}

type qrcodeService struct {
	size  int
	level qrcode.RecoveryLevel
}

// NewQRCodeService renders size x size PNGs. Unknown levels fall back to M.
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	level, ok := recoveryLevels[strings.ToUpper(strings.TrimSpace(errorCorrectionLevel))]
	if !ok {
		level = qrcode.Medium
	}

	return &qrcodeService{size: size, level: level}
}

// GenerateOrganizationCard encodes the organization as a vCard in a PNG QR code.
func (s *qrcodeService) GenerateOrganizationCard(org *entity.Organization) ([]byte, error) {
	if org == nil {
		return nil, errors.New("organization is required")
	}

	code, err := qrcode.New(VCard(org), s.level)
	if err != nil {
		return nil, errors.Wrap(err, "encode vcard")
	}

	png, err := code.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "render png")
	}

	return png, nil
}

var vCardEscaper = strings.NewReplacer(`\`, `\\`, ",", `\,`, ";", `\;`, "\n", `\n`)

// VCard renders a vCard 3.0 with the organization's name, phones and address.
func VCard(org *entity.Organization) string {
	var b strings.Builder

	b.WriteString("BEGIN:VCARD\r\n")
	b.WriteString("VERSION:3.0\r\n")
	b.WriteString("FN:" + vCardEscaper.Replace(org.Name) + "\r\n")
	b.WriteString("ORG:" + vCardEscaper.Replace(org.Name) + "\r\n")
	for _, phone := range org.Phones {
		b.WriteString("TEL;TYPE=WORK,VOICE:" + vCardEscaper.Replace(phone) + "\r\n")
	}
	if org.Building != nil {
		b.WriteString("ADR;TYPE=WORK:;;" + vCardEscaper.Replace(org.Building.Address) + ";;;;\r\n")
		fmt.Fprintf(&b, "GEO:%.6f;%.6f\r\n", org.Building.Latitude, org.Building.Longitude)
	}
	b.WriteString("END:VCARD\r\n")

	return b.String()
}
