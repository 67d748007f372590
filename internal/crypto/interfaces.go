package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/template_cipher_mock.go -package=mock

import "github.com/MKhiriev/go-bio-console/models"

// TemplateCipher protects biometric templates at rest.
//
// Encrypt returns the stored form base64(nonce ‖ ciphertext_with_tag). The
// owner and modality of the template are bound as additional authenticated
// data, so Decrypt must be given the same pair the blob was produced for.
type TemplateCipher interface {
	// Encrypt serializes the template vector and seals it with a fresh nonce.
	Encrypt(template models.Template) (string, error)

	// Decrypt opens blob and returns the template. Any decoding,
	// authentication or format failure is reported as [ErrTamperedOrCorrupt].
	Decrypt(ownerID int64, modality models.Modality, blob string) (models.Template, error)
}
