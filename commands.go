package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"

	"ens-nodes/ens"
	"ens-nodes/nodestore"
)

// wellKnownNames are printed, in order, when no sub-command is given.
var wellKnownNames = []string{"lit", "reverse", "addr.reverse"}

func printWellKnownNodes(w io.Writer) error {
	for _, name := range wellKnownNames {
		node, err := ens.NameHash(name)
		if err != nil {
			return err
		}
		log.Debug("Computed namehash", "name", name, "node", node)
		if _, err := fmt.Fprintln(w, node.Hex()); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

func hashNames(w io.Writer, conf *hashConfig) error {
	var store *nodestore.Store
	if conf.DBPath != "" {
		var err error
		store, err = nodestore.Open(conf.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	for _, name := range conf.Args.Names {
		if conf.Normalize {
			normalized, err := ens.Normalize(name)
			if err != nil {
				return err
			}
			if normalized != name {
				log.Info("Normalized name", "name", name, "normalized", normalized)
			}
			name = normalized
		}

		node, err := ens.NameHash(name)
		if err != nil {
			return err
		}
		if store != nil && name != "" {
			if _, err := store.Put(name); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, node.Hex()); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

func hashLabels(w io.Writer, conf *labelHashConfig) error {
	for _, label := range conf.Args.Labels {
		h, err := ens.LabelHash(label)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, h.Hex()); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

func keccak(w io.Writer, conf *keccakConfig) error {
	data, err := hex.DecodeString(strings.TrimPrefix(conf.Args.Data, "0x"))
	if err != nil {
		return errors.Wrap(err, "invalid hex string")
	}
	if _, err := fmt.Fprintf(w, "0x%s\n", hex.EncodeToString(crypto.Keccak256(data))); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func reverseNodes(w io.Writer, conf *reverseConfig) error {
	for _, s := range conf.Args.Addresses {
		if !common.IsHexAddress(s) {
			return errors.Errorf("invalid address %q", s)
		}
		addr := common.HexToAddress(s)
		log.Debug("Reverse name", "address", addr, "name", ens.ReverseName(addr))
		if _, err := fmt.Fprintln(w, ens.ReverseNodeOf(addr).Hex()); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

func dnsEncode(w io.Writer, conf *dnsEncodeConfig) error {
	for _, name := range conf.Args.Names {
		enc, err := ens.DNSEncode(name)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "0x%s\n", hex.EncodeToString(enc)); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

func lookup(w io.Writer, conf *lookupConfig) error {
	store, err := nodestore.Open(conf.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	for _, s := range conf.Args.Nodes {
		b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
		if err != nil || len(b) != common.HashLength {
			return errors.Errorf("invalid node %q", s)
		}
		rec, err := store.Get(common.BytesToHash(b))
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, rec.Name); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

func dump(w io.Writer, conf *dumpConfig) error {
	store, err := nodestore.Open(conf.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	var records []*nodestore.Record
	err = store.Iterate(func(rec *nodestore.Record) error {
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return err
	}
	log.Info("Read node store", "records", len(records))

	sort.Slice(records, func(i, j int) bool {
		return records[i].Name < records[j].Name
	})
	for _, rec := range records {
		if _, err := fmt.Fprintf(w, "%s %s\n", rec.Node.Hex(), rec.Name); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
