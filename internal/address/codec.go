// Package address converts between Cosmos bech32 addresses, raw hash bytes,
// hex strings and consensus/account public keys.
//
// Functions used from presentation code return (value, ok) instead of an
// error: ok is false whenever the input could not be decoded or the key type
// is unknown, and the value is then always empty.
package address

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/bech32"
)

// Public key type URLs.
const (
	KeyTypeEd25519   = "/cosmos.crypto.ed25519.PubKey"
	KeyTypeSecp256k1 = "/cosmos.crypto.secp256k1.PubKey"
)

const (
	operatorInfix = "valoper"
	addressLength = 20
)

// HexCase selects the case of hex encoded outputs.
type HexCase int

const (
	HexUpper HexCase = iota
	HexLower
)

// Address is a decoded bech32 address.
type Address struct {
	Prefix string
	Bytes  []byte
}

// Option configures a Codec.
type Option func(*Codec)

// WithHexCase sets the hex case used by every hex output of the codec.
func WithHexCase(c HexCase) Option {
	return func(codec *Codec) {
		codec.hexCase = c
	}
}

// WithPrefixRewrite maps an operator prefix (before or after removing the
// valoper infix) to the account prefix of that chain.
func WithPrefixRewrite(operatorPrefix, accountPrefix string) Option {
	return func(codec *Codec) {
		codec.rewrites[operatorPrefix] = accountPrefix
	}
}

// Codec performs the conversions. The zero value is not usable; use NewCodec.
type Codec struct {
	hexCase  HexCase
	rewrites map[string]string
}

// defaultRewrites lists chains whose account prefix is not their operator
// prefix without "valoper".
var defaultRewrites = map[string]string{
	"iva":     "iaa",
	"crocncl": "cro",
}

// NewCodec builds a codec with the default prefix rewrites and upper case hex.
func NewCodec(opts ...Option) *Codec {
	c := &Codec{
		hexCase:  HexUpper,
		rewrites: make(map[string]string, len(defaultRewrites)),
	}
	for from, to := range defaultRewrites {
		c.rewrites[from] = to
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Decode decodes a bech32 address. Failures are returned as *DecodeError.
func (c *Codec) Decode(addr string) (Address, error) {
	prefix, data, err := bech32.DecodeToBase256(addr)
	if err != nil {
		return Address{}, &DecodeError{Input: addr, Err: err}
	}
	return Address{Prefix: prefix, Bytes: data}, nil
}

// Encode bech32 encodes data under prefix.
func (c *Codec) Encode(prefix string, data []byte) (string, error) {
	return bech32.EncodeFromBase256(prefix, data)
}

// OperatorToAccount converts an operator address (e.g. poktvaloper1...) to
// the account address sharing its bytes.
func (c *Codec) OperatorToAccount(operator string) (string, bool) {
	if operator == "" {
		return "", false
	}
	addr, err := c.Decode(operator)
	if err != nil {
		return "", false
	}
	return c.encode(c.accountPrefix(addr.Prefix), addr.Bytes)
}

func (c *Codec) accountPrefix(operatorPrefix string) string {
	if to, ok := c.rewrites[operatorPrefix]; ok {
		return to
	}
	stripped := strings.Replace(operatorPrefix, operatorInfix, "", 1)
	if to, ok := c.rewrites[stripped]; ok {
		return to
	}
	return stripped
}

// ConsensusPubkeyToHex returns the hex consensus address of a validator key:
// SHA-256 truncated to 20 bytes for ed25519, RIPEMD-160(SHA-256) for
// secp256k1.
func (c *Codec) ConsensusPubkeyToHex(pk PubKey) (string, bool) {
	raw, ok := pk.raw()
	if !ok {
		return "", false
	}
	switch pk.Type {
	case KeyTypeEd25519:
		return c.formatHex(ed25519Address(raw)), true
	case KeyTypeSecp256k1:
		return c.formatHex(btcutil.Hash160(raw)), true
	default:
		return "", false
	}
}

// PubKeyToValcons bech32 encodes the first 20 bytes of SHA-256(key) under
// prefix.
func (c *Codec) PubKeyToValcons(pk PubKey, prefix string) (string, bool) {
	raw, ok := pk.raw()
	if !ok {
		return "", false
	}
	return c.encode(prefix, ed25519Address(raw))
}

// Secp256k1PubKeyToAccount derives the account address of a secp256k1 key.
// pk may be a typed secp256k1 key or a bare base64 key (empty Type).
func (c *Codec) Secp256k1PubKeyToAccount(pk PubKey, prefix string) (string, bool) {
	if pk.Type != "" && pk.Type != KeyTypeSecp256k1 {
		return "", false
	}
	raw, ok := pk.raw()
	if !ok {
		return "", false
	}
	return c.encode(prefix, btcutil.Hash160(raw))
}

// ValconsToHex returns the hex encoded payload of a bech32 address.
func (c *Codec) ValconsToHex(addr string) (string, bool) {
	if addr == "" {
		return "", false
	}
	decoded, err := c.Decode(addr)
	if err != nil {
		return "", false
	}
	return c.formatHex(decoded.Bytes), true
}

// ToETHAddress returns the 0x prefixed hex form of a bech32 address. EVM
// addresses are always lower case.
func (c *Codec) ToETHAddress(addr string) (string, bool) {
	decoded, err := c.Decode(addr)
	if err != nil {
		return "", false
	}
	return "0x" + hex.EncodeToString(decoded.Bytes), true
}

func (c *Codec) encode(prefix string, data []byte) (string, bool) {
	if prefix == "" {
		return "", false
	}
	out, err := c.Encode(prefix, data)
	if err != nil {
		return "", false
	}
	return out, true
}

func (c *Codec) formatHex(data []byte) string {
	out := hex.EncodeToString(data)
	if c.hexCase == HexUpper {
		return strings.ToUpper(out)
	}
	return out
}

func ed25519Address(raw []byte) []byte {
	sum := sha256.Sum256(raw)
	return sum[:addressLength]
}

func decodeBase64(s string) ([]byte, bool) {
	if s == "" {
		return nil, false
	}
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil || len(raw) == 0 {
		return nil, false
	}
	return raw, true
}
