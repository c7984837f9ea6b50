package transcode

import (
	"fmt"
	"sort"

	"bdoc/pkg/codec"
	"bdoc/pkg/doc"
)

// toNative converts a value into the plain Go tree the interchange
// encoders understand: nil, bool, float64/int64, string, []byte, []any and
// map[string]any. Types the target formats cannot carry degrade to
// conventional shapes.
func toNative(v doc.Value) (any, error) {
	switch t := v.(type) {
	case doc.Null, doc.Undefined:
		return nil, nil
	case doc.Boolean:
		return bool(t), nil
	case doc.Double:
		return float64(t), nil
	case doc.Int32:
		return int64(t), nil
	case doc.Int64:
		return int64(t), nil
	case doc.DateTime:
		return int64(t), nil
	case doc.String:
		return string(t), nil
	case doc.JavaScript:
		return string(t), nil
	case doc.Symbol:
		return string(t), nil
	case doc.ObjectID:
		return t.Hex(), nil
	case doc.Binary:
		return t.Data, nil
	case doc.Regex:
		return map[string]any{"pattern": t.Pattern, "options": t.Options}, nil
	case doc.DBPointer:
		return map[string]any{"namespace": t.Namespace, "id": t.ID.Hex()}, nil
	case doc.Timestamp:
		return map[string]any{"t": int64(t.T), "i": int64(t.I)}, nil
	case doc.MinKey:
		return map[string]any{"$minKey": int64(1)}, nil
	case doc.MaxKey:
		return map[string]any{"$maxKey": int64(1)}, nil
	case *doc.CodeWithScope:
		scope, err := docToNative(t.Scope)
		if err != nil {
			return nil, err
		}
		return map[string]any{"code": t.Code, "scope": scope}, nil
	case *doc.Array:
		out := make([]any, 0, t.Len())
		for _, item := range t.Values() {
			n, err := toNative(item)
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		}
		return out, nil
	case *doc.Document:
		return docToNative(t)
	case *doc.Wrapped:
		return docToNative(t.Doc)
	case doc.Raw:
		d, err := codec.Materialize(t)
		if err != nil {
			return nil, err
		}
		return docToNative(d)
	}
	return nil, fmt.Errorf("cannot transcode %T", v)
}

func docToNative(d *doc.Document) (map[string]any, error) {
	if d == nil {
		return map[string]any{}, nil
	}
	out := make(map[string]any, d.Len())
	for _, el := range d.Elements() {
		n, err := toNative(el.Value)
		if err != nil {
			return nil, err
		}
		out[el.Key] = n
	}
	return out, nil
}

// fromNative narrows a plain Go tree back into document values. Map-backed
// inputs lose key order; keys are sorted for determinism.
func fromNative(x any) (doc.Value, error) {
	switch t := x.(type) {
	case nil:
		return doc.Null{}, nil
	case bool:
		return doc.Boolean(t), nil
	case float64:
		return doc.Double(t), nil
	case float32:
		return doc.Double(t), nil
	case int:
		return doc.Int64(t), nil
	case int32:
		return doc.Int32(t), nil
	case int64:
		return doc.Int64(t), nil
	case uint64:
		return doc.Int64(t), nil
	case string:
		return doc.String(t), nil
	case []byte:
		return doc.Binary{Data: t}, nil
	case []any:
		a := doc.NewArray()
		for _, item := range t {
			v, err := fromNative(item)
			if err != nil {
				return nil, err
			}
			a.Append(v)
		}
		return a, nil
	case map[string]any:
		return mapToDocument(t)
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, v := range t {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("map key %v is not a string", k)
			}
			m[ks] = v
		}
		return mapToDocument(m)
	}
	return nil, fmt.Errorf("cannot narrow %T into a document value", x)
}

func mapToDocument(m map[string]any) (*doc.Document, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	d := doc.NewDocument()
	for _, k := range keys {
		v, err := fromNative(m[k])
		if err != nil {
			return nil, err
		}
		d.Append(k, v)
	}
	return d, nil
}
