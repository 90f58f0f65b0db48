package cosmos

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/goodnatureofminers/pokt-explorer-backend/internal/address"
)

// ErrNoMessages is returned for transactions whose body carries no message.
var ErrNoMessages = errors.New("transaction has no messages")

// Coin is a denominated amount. Amount is the decimal integer string of the
// chain.
type Coin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

// Message is a decoded transaction message. Sender and Recipient are
// best-effort and may be empty.
type Message struct {
	TypeURL   string `json:"type_url"`
	Sender    string `json:"sender,omitempty"`
	Recipient string `json:"recipient,omitempty"`
	Amount    []Coin `json:"amount,omitempty"`
}

// Type returns the last dotted segment of the type URL, e.g. "MsgSend".
func (m Message) Type() string {
	if m.TypeURL == "" {
		return "Unknown"
	}
	if i := strings.LastIndex(m.TypeURL, "."); i >= 0 {
		return m.TypeURL[i+1:]
	}
	return strings.TrimPrefix(m.TypeURL, "/")
}

// Tx is a decoded TxRaw.
type Tx struct {
	Hash     string    `json:"hash"`
	Memo     string    `json:"memo,omitempty"`
	Messages []Message `json:"messages"`
	Fee      []Coin    `json:"fee,omitempty"`
}

// TxHash is the uppercase hex SHA-256 of the raw transaction bytes.
func TxHash(raw []byte) string {
	sum := sha256.Sum256(raw)
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

// layout names the fields of a known message type.
type layout struct {
	sender, recipient protowire.Number
	amount            protowire.Number
	repeatedAmount    bool
}

var knownMessages = map[string]layout{
	"/cosmos.bank.v1beta1.MsgSend":                                {sender: 1, recipient: 2, amount: 3, repeatedAmount: true},
	"/cosmos.staking.v1beta1.MsgDelegate":                         {sender: 1, recipient: 2, amount: 3},
	"/cosmos.staking.v1beta1.MsgUndelegate":                       {sender: 1, recipient: 2, amount: 3},
	"/cosmos.distribution.v1beta1.MsgWithdrawDelegatorReward":     {sender: 1, recipient: 2},
	"/cosmos.distribution.v1beta1.MsgWithdrawValidatorCommission": {sender: 1},
	"/ibc.applications.transfer.v1.MsgTransfer":                   {sender: 4, recipient: 5, amount: 3},

	"/pocket.supplier.MsgStakeSupplier":            {sender: 1, recipient: 3, amount: 4},
	"/pocket.supplier.MsgUnstakeSupplier":          {sender: 1, recipient: 2},
	"/pocket.application.MsgStakeApplication":      {sender: 1, amount: 2},
	"/pocket.application.MsgUnstakeApplication":    {sender: 1},
	"/pocket.application.MsgDelegateToGateway":     {sender: 1, recipient: 2},
	"/pocket.application.MsgUndelegateFromGateway": {sender: 1, recipient: 2},
	"/pocket.application.MsgTransferApplication":   {sender: 1, recipient: 2},
	"/pocket.gateway.MsgStakeGateway":              {sender: 1, amount: 2},
	"/pocket.gateway.MsgUnstakeGateway":            {sender: 1},
	"/pocket.proof.MsgCreateClaim":                 {sender: 1},
	"/pocket.proof.MsgSubmitProof":                 {sender: 1},
}

// DecodeTx decodes a protobuf TxRaw (body, auth_info, signatures). Messages
// of known types are read by field number; for other types the first two
// bech32 strings become sender and recipient and the first coin-shaped
// field becomes the amount.
func DecodeTx(raw []byte) (*Tx, error) {
	txRaw, err := parseFields(raw)
	if err != nil {
		return nil, fmt.Errorf("decode tx raw: %w", err)
	}

	tx := &Tx{Hash: TxHash(raw)}
	for _, f := range txRaw {
		if f.typ != protowire.BytesType {
			continue
		}
		switch f.num {
		case 1:
			if err := decodeBody(f.bytes, tx); err != nil {
				return nil, err
			}
		case 2:
			fee, err := decodeFee(f.bytes)
			if err != nil {
				return nil, err
			}
			tx.Fee = fee
		}
	}
	if len(tx.Messages) == 0 {
		return nil, ErrNoMessages
	}
	return tx, nil
}

func decodeBody(b []byte, tx *Tx) error {
	fields, err := parseFields(b)
	if err != nil {
		return fmt.Errorf("decode tx body: %w", err)
	}
	for _, f := range fields {
		if f.typ != protowire.BytesType {
			continue
		}
		switch f.num {
		case 1:
			msg, err := decodeAny(f.bytes)
			if err != nil {
				return err
			}
			tx.Messages = append(tx.Messages, msg)
		case 2:
			tx.Memo = string(f.bytes)
		}
	}
	return nil
}

func decodeAny(b []byte) (Message, error) {
	fields, err := parseFields(b)
	if err != nil {
		return Message{}, fmt.Errorf("decode message: %w", err)
	}
	var (
		msg   Message
		value []byte
	)
	for _, f := range fields {
		switch f.num {
		case 1:
			msg.TypeURL = string(f.bytes)
		case 2:
			value = f.bytes
		}
	}

	inner, err := parseFields(value)
	if err != nil {
		return Message{}, fmt.Errorf("decode %s: %w", msg.TypeURL, err)
	}
	if l, ok := knownMessages[msg.TypeURL]; ok {
		fillKnown(&msg, l, inner)
	} else {
		fillGuessed(&msg, inner)
	}
	return msg, nil
}

func fillKnown(msg *Message, l layout, fields []field) {
	for _, f := range fields {
		if f.typ != protowire.BytesType {
			continue
		}
		switch f.num {
		case l.sender:
			if msg.Sender == "" {
				msg.Sender = string(f.bytes)
			}
		case l.recipient:
			if msg.Recipient == "" {
				msg.Recipient = string(f.bytes)
			}
		case l.amount:
			if !l.repeatedAmount && len(msg.Amount) > 0 {
				continue
			}
			if c, ok := decodeCoin(f.bytes); ok {
				msg.Amount = append(msg.Amount, c)
			}
		}
	}
}

func fillGuessed(msg *Message, fields []field) {
	for _, f := range fields {
		if f.typ != protowire.BytesType {
			continue
		}
		if s := string(f.bytes); utf8.ValidString(s) && address.IsValid(s, "") {
			switch {
			case msg.Sender == "":
				msg.Sender = s
			case msg.Recipient == "":
				msg.Recipient = s
			}
			continue
		}
		if len(msg.Amount) == 0 {
			if c, ok := decodeCoin(f.bytes); ok {
				msg.Amount = append(msg.Amount, c)
			}
		}
	}
}

// decodeFee reads AuthInfo.fee.amount.
func decodeFee(authInfo []byte) ([]Coin, error) {
	fields, err := parseFields(authInfo)
	if err != nil {
		return nil, fmt.Errorf("decode auth info: %w", err)
	}
	var coins []Coin
	for _, f := range fields {
		if f.num != 2 || f.typ != protowire.BytesType {
			continue
		}
		feeFields, err := parseFields(f.bytes)
		if err != nil {
			return nil, fmt.Errorf("decode fee: %w", err)
		}
		for _, ff := range feeFields {
			if ff.num != 1 || ff.typ != protowire.BytesType {
				continue
			}
			if c, ok := decodeCoin(ff.bytes); ok {
				coins = append(coins, c)
			}
		}
	}
	return coins, nil
}

// decodeCoin accepts a message with a denom string in field 1 and a decimal
// digit string in field 2.
func decodeCoin(b []byte) (Coin, bool) {
	fields, err := parseFields(b)
	if err != nil || len(fields) == 0 {
		return Coin{}, false
	}
	var c Coin
	for _, f := range fields {
		if f.typ != protowire.BytesType {
			return Coin{}, false
		}
		switch f.num {
		case 1:
			c.Denom = string(f.bytes)
		case 2:
			c.Amount = string(f.bytes)
		default:
			return Coin{}, false
		}
	}
	if c.Denom == "" || !isDigits(c.Amount) {
		return Coin{}, false
	}
	return c, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

type field struct {
	num   protowire.Number
	typ   protowire.Type
	bytes []byte
}

// parseFields splits a protobuf message into its top level fields. Payloads
// are kept for length-delimited values only.
func parseFields(b []byte) ([]field, error) {
	var out []field
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		b = b[n:]
		if typ == protowire.BytesType {
			v, m := protowire.ConsumeBytes(b)
			if m < 0 {
				return nil, protowire.ParseError(m)
			}
			out = append(out, field{num: num, typ: typ, bytes: v})
			b = b[m:]
			continue
		}
		m := protowire.ConsumeFieldValue(num, typ, b)
		if m < 0 {
			return nil, protowire.ParseError(m)
		}
		out = append(out, field{num: num, typ: typ})
		b = b[m:]
	}
	return out, nil
}
