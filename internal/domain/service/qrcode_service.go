package service

import "directory/internal/domain/entity"

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateOrganizationCard encodes the organization's contact card as a PNG QR code.
	GenerateOrganizationCard(org *entity.Organization) ([]byte, error)
}
