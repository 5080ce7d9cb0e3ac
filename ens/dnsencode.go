package ens

import "github.com/pkg/errors"

const maxLabelLength = 63

// DNSEncode returns name in DNS wire format: every label prefixed with its
// length, terminated by a zero byte.
func DNSEncode(name string) ([]byte, error) {
	labels := Labels(name)
	out := make([]byte, 0, len(name)+2)
	for _, label := range labels {
		switch {
		case label == "":
			return nil, errors.Wrapf(ErrEmptyLabel, "name %q", name)
		case len(label) > maxLabelLength:
			return nil, errors.Wrapf(ErrLabelTooLong, "label %q is %d bytes", label, len(label))
		}
		out = append(out, byte(len(label)))
		out = append(out, label...)
	}
	return append(out, 0), nil
}
