package transport

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/goodnatureofminers/pokt-explorer-backend/internal/address"
)

type addressResponse struct {
	Address string `json:"address"`
	Prefix  string `json:"prefix"`
	Hex     string `json:"hex"`
	ETH     string `json:"eth"`
	Account string `json:"account,omitempty"`
}

// HandleAddress decodes a bech32 address into its prefix and hex forms.
// Operator addresses also carry their account address.
func (h *Handler) HandleAddress(w http.ResponseWriter, r *http.Request) {
	addr := mux.Vars(r)["address"]
	decoded, err := h.codec.Decode(addr)
	if err != nil {
		h.writeError(w, err)
		return
	}
	hexForm, _ := h.codec.ValconsToHex(addr)
	eth, _ := h.codec.ToETHAddress(addr)
	resp := addressResponse{
		Address: addr,
		Prefix:  decoded.Prefix,
		Hex:     hexForm,
		ETH:     eth,
	}
	if strings.Contains(decoded.Prefix, "valoper") {
		resp.Account, _ = h.codec.OperatorToAccount(addr)
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleOperatorAccount converts an operator address to its account address.
func (h *Handler) HandleOperatorAccount(w http.ResponseWriter, r *http.Request) {
	operator := mux.Vars(r)["address"]
	account, ok := h.codec.OperatorToAccount(operator)
	if !ok {
		h.writeError(w, invalid("cannot convert operator address %q", operator))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"operator": operator, "account": account})
}

type pubKeyRequest struct {
	PubKey        address.PubKey `json:"pub_key"`
	AccountPrefix string         `json:"account_prefix"`
	ValconsPrefix string         `json:"valcons_prefix"`
}

type pubKeyResponse struct {
	ConsensusHex string `json:"consensus_hex,omitempty"`
	Valcons      string `json:"valcons,omitempty"`
	Account      string `json:"account,omitempty"`
}

// HandlePubKeyAddresses derives the consensus hex address, the valcons
// address and the account address of a public key. Derivations that do not
// apply to the key type are omitted.
func (h *Handler) HandlePubKeyAddresses(w http.ResponseWriter, r *http.Request) {
	var req pubKeyRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&req); err != nil {
		h.writeError(w, invalid("bad json: %v", err))
		return
	}
	if req.PubKey.Key == "" {
		h.writeError(w, invalid("pub_key is required"))
		return
	}

	var resp pubKeyResponse
	resp.ConsensusHex, _ = h.codec.ConsensusPubkeyToHex(req.PubKey)
	if req.ValconsPrefix != "" {
		resp.Valcons, _ = h.codec.PubKeyToValcons(req.PubKey, req.ValconsPrefix)
	}
	if req.AccountPrefix != "" {
		resp.Account, _ = h.codec.Secp256k1PubKeyToAccount(req.PubKey, req.AccountPrefix)
	}
	if resp == (pubKeyResponse{}) {
		h.writeError(w, invalid("no address could be derived from the key"))
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
