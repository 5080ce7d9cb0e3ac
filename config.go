package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	hashSubCmd      = "hash"
	labelHashSubCmd = "labelhash"
	keccakSubCmd    = "keccak"
	reverseSubCmd   = "reverse"
	dnsEncodeSubCmd = "dnsencode"
	lookupSubCmd    = "lookup"
	dumpSubCmd      = "dump"
)

type configFlags struct {
	LogLevel string `long:"loglevel" short:"l" description:"Logging level {trace, debug, info, warn, error}" default:"info"`
	NoColor  bool   `long:"nocolor" description:"Disable colored log output"`
}

type hashConfig struct {
	Normalize bool   `long:"normalize" short:"n" description:"Apply UTS-46 normalization before hashing"`
	DBPath    string `long:"db" description:"Store hashed names in the node database at this path"`
	Args      struct {
		Names []string `positional-arg-name:"NAME" required:"1"`
	} `positional-args:"yes"`
}

type labelHashConfig struct {
	Args struct {
		Labels []string `positional-arg-name:"LABEL" required:"1"`
	} `positional-args:"yes"`
}

type keccakConfig struct {
	Args struct {
		Data string `positional-arg-name:"HEX" required:"yes"`
	} `positional-args:"yes"`
}

type reverseConfig struct {
	Args struct {
		Addresses []string `positional-arg-name:"ADDRESS" required:"1"`
	} `positional-args:"yes"`
}

type dnsEncodeConfig struct {
	Args struct {
		Names []string `positional-arg-name:"NAME" required:"1"`
	} `positional-args:"yes"`
}

type lookupConfig struct {
	DBPath string `long:"db" description:"Path of the node database" required:"true"`
	Args   struct {
		Nodes []string `positional-arg-name:"NODE" required:"1"`
	} `positional-args:"yes"`
}

type dumpConfig struct {
	DBPath string `long:"db" description:"Path of the node database" required:"true"`
}

// parseCommandLine returns the active sub-command and its config. An empty
// sub-command means none was given.
func parseCommandLine(args []string) (cfg *configFlags, subCommand string, subConfig interface{}, err error) {
	cfg = &configFlags{}
	parser := flags.NewParser(cfg, flags.HelpFlag|flags.PassDoubleDash)
	parser.SubcommandsOptional = true

	hashConf := &hashConfig{}
	parser.AddCommand(hashSubCmd, "Print the namehash of names",
		"Print the ENS namehash of each name, optionally recording it in a node database", hashConf)

	labelHashConf := &labelHashConfig{}
	parser.AddCommand(labelHashSubCmd, "Print the labelhash of labels",
		"Print keccak256 of each single label", labelHashConf)

	keccakConf := &keccakConfig{}
	parser.AddCommand(keccakSubCmd, "Print keccak256 of hex data",
		"Print keccak256 of hex encoded data, 0x prefix optional", keccakConf)

	reverseConf := &reverseConfig{}
	parser.AddCommand(reverseSubCmd, "Print the reverse node of addresses",
		"Print the addr.reverse node of each Ethereum address", reverseConf)

	dnsEncodeConf := &dnsEncodeConfig{}
	parser.AddCommand(dnsEncodeSubCmd, "Print the DNS wire encoding of names",
		"Print the DNS wire encoding of each name as hex", dnsEncodeConf)

	lookupConf := &lookupConfig{}
	parser.AddCommand(lookupSubCmd, "Look up the name of nodes",
		"Print the stored name of each node in the node database", lookupConf)

	dumpConf := &dumpConfig{}
	parser.AddCommand(dumpSubCmd, "List stored names",
		"List every name stored in the node database, sorted by name", dumpConf)

	if _, err := parser.ParseArgs(args); err != nil {
		return nil, "", nil, err
	}

	if parser.Active == nil {
		return cfg, "", nil, nil
	}
	subCommand = parser.Active.Name
	switch subCommand {
	case hashSubCmd:
		subConfig = hashConf
	case labelHashSubCmd:
		subConfig = labelHashConf
	case keccakSubCmd:
		subConfig = keccakConf
	case reverseSubCmd:
		subConfig = reverseConf
	case dnsEncodeSubCmd:
		subConfig = dnsEncodeConf
	case lookupSubCmd:
		subConfig = lookupConf
	case dumpSubCmd:
		subConfig = dumpConf
	default:
		return nil, "", nil, errors.Errorf("unknown sub-command %q", subCommand)
	}
	return cfg, subCommand, subConfig, nil
}

func printErrorAndExit(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}
