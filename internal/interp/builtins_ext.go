package interp

import (
	"sort"
	"strconv"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Commands with no counterpart in cli_lil.c, wired onto third-party
// libraries the way a host embedding lil for scripting duties (config
// generation, fixture data, correlation IDs) would plausibly want.

func registerExtCmds(ip *Interp) {
	ip.Register("uuidgen", fncUUIDGen)
	ip.Register("yamlencode", fncYAMLEncode)
	ip.Register("yamldecode", fncYAMLDecode)
}

// fncUUIDGen returns a random (v4) UUID, or a v5 UUID derived from a
// namespace and name when both are given: `uuidgen`, or
// `uuidgen <namespace-uuid> <name>`.
func fncUUIDGen(ip *Interp, args []*Value) *Value {
	if len(args) >= 2 {
		ns, err := uuid.Parse(argStr(args, 0))
		if err != nil {
			ip.SetErrorf("uuidgen: invalid namespace: %s", err)
			return nil
		}
		return NewValue(uuid.NewSHA1(ns, []byte(argStr(args, 1))).String())
	}
	return NewValue(uuid.New().String())
}

// yamlToValue converts a decoded YAML node into lil's value/list
// representation: scalars become plain Values, sequences become lists,
// and mappings become a flat list of alternating key/value entries (the
// same representation `array set`-style lil scripts already use for
// dictionaries built out of `list`/`foreach`).
func yamlToValue(data any) *Value {
	switch v := data.(type) {
	case nil:
		return EmptyValue
	case bool:
		return NewBool(v)
	case int:
		return NewInteger(int64(v))
	case int64:
		return NewInteger(v)
	case float64:
		return NewValue(strconv.FormatFloat(v, 'g', -1, 64))
	case string:
		return NewValue(v)
	case []any:
		list := NewList()
		for _, item := range v {
			list.Append(yamlToValue(item))
		}
		return list.ToValue(true)
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		list := NewList()
		for _, k := range keys {
			list.Append(NewValue(k))
			list.Append(yamlToValue(v[k]))
		}
		return list.ToValue(true)
	default:
		return EmptyValue
	}
}

func fncYAMLDecode(ip *Interp, args []*Value) *Value {
	if len(args) < 1 {
		return nil
	}

	var data any
	if err := yaml.Unmarshal([]byte(argStr(args, 0)), &data); err != nil {
		ip.SetErrorf("yamldecode: %s", err)
		return nil
	}
	return yamlToValue(data)
}

// fncYAMLEncode renders a value as a YAML document. A value that looks
// like a list (per SubstToList) is emitted as a YAML sequence of its
// elements; otherwise it is emitted as a scalar string.
func fncYAMLEncode(ip *Interp, args []*Value) *Value {
	if len(args) < 1 {
		return nil
	}

	list := ip.SubstToList(args[0])
	var data any
	if list.Size() <= 1 {
		data = args[0].String()
	} else {
		items := make([]string, list.Size())
		for i, v := range list.Items() {
			items[i] = v.String()
		}
		data = items
	}

	out, err := yaml.Marshal(data)
	if err != nil {
		ip.SetErrorf("yamlencode: %s", err)
		return nil
	}
	return NewValue(string(out))
}
