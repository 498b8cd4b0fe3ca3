package models

const (
	MaxMessageHashLen    = 64
	MaxMessageLocatorLen = 256
)

// Message describes an encrypted payload stored off-ledger: a content hash
// and the locator the ciphertext can be fetched from.
type Message struct {
	Hash    string
	Locator string
}

// Vault is the custody record of one owner.
type Vault struct {
	Owner   string
	Balance int64
	Message *Message
}

// MessageUpload is what a client needs to push an encrypted message blob to
// object storage before recording it with SetMessage.
type MessageUpload struct {
	Locator string
	URL     string
}
