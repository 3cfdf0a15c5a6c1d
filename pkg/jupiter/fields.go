package jupiter

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/treeout"
)

// AmountLamports is a token amount in smallest units. The API has emitted it
// both as a decimal string and as a bare JSON number across versions, so the
// decoder accepts either; it always marshals back as a string, which is what
// the current API expects in request bodies.
type AmountLamports uint64

func (a AmountLamports) Uint64() uint64 { return uint64(a) }

func (a AmountLamports) String() string { return strconv.FormatUint(uint64(a), 10) }

func (a AmountLamports) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatUint(uint64(a), 10))
}

func (a *AmountLamports) UnmarshalJSON(data []byte) error {
	trimmed := bytes.Trim(data, `"`)
	if bytes.Equal(trimmed, []byte("null")) {
		*a = 0
		return nil
	}
	v, err := strconv.ParseUint(string(trimmed), 10, 64)
	if err != nil {
		return &DecodeError{Field: "amount", Err: err}
	}
	*a = AmountLamports(v)
	return nil
}

// Instruction is a single decoded on-chain instruction. On the wire the
// program id and account pubkeys are base58 strings and the data is base64.
type Instruction struct {
	ProgramID solana.PublicKey
	Accounts  []*solana.AccountMeta
	Data      []byte
}

type instructionWire struct {
	ProgramID string `json:"programId"`
	Accounts  []struct {
		Pubkey     string `json:"pubkey"`
		IsSigner   bool   `json:"isSigner"`
		IsWritable bool   `json:"isWritable"`
	} `json:"accounts"`
	Data string `json:"data"`
}

func (inst *Instruction) UnmarshalJSON(data []byte) error {
	var wire instructionWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	programID, err := solana.PublicKeyFromBase58(wire.ProgramID)
	if err != nil {
		return &DecodeError{Field: "programId", Err: err}
	}

	accounts := make([]*solana.AccountMeta, 0, len(wire.Accounts))
	for i, acc := range wire.Accounts {
		pubkey, err := solana.PublicKeyFromBase58(acc.Pubkey)
		if err != nil {
			return &DecodeError{Field: fmt.Sprintf("accounts[%d].pubkey", i), Err: err}
		}
		accounts = append(accounts, &solana.AccountMeta{
			PublicKey:  pubkey,
			IsSigner:   acc.IsSigner,
			IsWritable: acc.IsWritable,
		})
	}

	raw, err := base64.StdEncoding.DecodeString(wire.Data)
	if err != nil {
		return &DecodeError{Field: "data", Err: err}
	}

	inst.ProgramID = programID
	inst.Accounts = accounts
	inst.Data = raw
	return nil
}

func (inst Instruction) MarshalJSON() ([]byte, error) {
	wire := instructionWire{
		ProgramID: inst.ProgramID.String(),
		Data:      base64.StdEncoding.EncodeToString(inst.Data),
	}
	for _, acc := range inst.Accounts {
		wire.Accounts = append(wire.Accounts, struct {
			Pubkey     string `json:"pubkey"`
			IsSigner   bool   `json:"isSigner"`
			IsWritable bool   `json:"isWritable"`
		}{
			Pubkey:     acc.PublicKey.String(),
			IsSigner:   acc.IsSigner,
			IsWritable: acc.IsWritable,
		})
	}
	return json.Marshal(wire)
}

// Solana converts the instruction into the solana-go instruction type, ready
// to be placed into a transaction builder.
func (inst *Instruction) Solana() *solana.GenericInstruction {
	return solana.NewInstruction(inst.ProgramID, inst.Accounts, inst.Data)
}

func (inst *Instruction) EncodeToTree(parent treeout.Branches) {
	parent.Child(spew.Sdump(inst))
}

// parsePublicKeys converts a list of base58 strings, reporting the offending
// index on failure.
func parsePublicKeys(field string, raw []string) ([]solana.PublicKey, error) {
	out := make([]solana.PublicKey, 0, len(raw))
	for i, s := range raw {
		pk, err := solana.PublicKeyFromBase58(s)
		if err != nil {
			return nil, &DecodeError{Field: fmt.Sprintf("%s[%d]", field, i), Err: err}
		}
		out = append(out, pk)
	}
	return out, nil
}

// decodeTransaction turns a base64-encoded bincode transaction into a typed
// one. Handles both legacy and versioned transactions.
func decodeTransaction(field, encoded string) (*solana.Transaction, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, &DecodeError{Field: field, Err: err}
	}
	tx, err := solana.TransactionFromDecoder(bin.NewBinDecoder(raw))
	if err != nil {
		return nil, &DecodeError{Field: field, Err: err}
	}
	return tx, nil
}
