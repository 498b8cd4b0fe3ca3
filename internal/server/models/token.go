package models

import (
	"strconv"
	"time"
)

// TokenURIPrefix is the fixed metadata location of ownership tokens.
const TokenURIPrefix = "https://deadswitch.xyz/nft/"

// Token is the non-fungible ownership token minted for a switch.
type Token struct {
	ID          int64
	Holder      string
	SwitchOwner string
	CreatedAt   time.Time
}

func TokenURI(id int64) string {
	return TokenURIPrefix + strconv.FormatInt(id, 10)
}

func (t *Token) URI() string {
	return TokenURI(t.ID)
}
