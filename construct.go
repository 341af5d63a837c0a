package catalogmodel

import (
	"context"
	"sort"

	"github.com/reoring/catalogmodel/i18n"
	"github.com/reoring/catalogmodel/source"
)

// mappingView is a read-only, ordered view over the accepted input mappings.
type mappingView struct {
	keys []string
	get  func(string) (any, bool)
}

func viewOf(raw any) (mappingView, bool) {
	switch m := raw.(type) {
	case map[string]any:
		// plain maps have no order; sort for deterministic extras and warnings
		ks := make([]string, 0, len(m))
		for k := range m {
			ks = append(ks, k)
		}
		sort.Strings(ks)
		return mappingView{keys: ks, get: func(k string) (any, bool) { v, ok := m[k]; return v, ok }}, true
	case *source.Object:
		if m == nil {
			return mappingView{}, false
		}
		ks := make([]string, 0, m.Len())
		for p := m.Oldest(); p != nil; p = p.Next() {
			ks = append(ks, p.Key)
		}
		return mappingView{keys: ks, get: m.Get}, true
	case *Record:
		if m == nil {
			return mappingView{}, false
		}
		ks := append(m.schema.Fields(), m.ExtraKeys()...)
		return mappingView{keys: ks, get: m.Get}, true
	}
	return mappingView{}, false
}

// construct builds a record at the path carried by ctx: declared fields first
// (normalized, defaulted or reported missing), then unknown keys per policy,
// then post-init hooks. No partial record is ever returned.
func (s *Schema) construct(ctx context.Context, raw any) (*Record, error) {
	path := pathFrom(ctx)
	src, ok := viewOf(raw)
	if !ok {
		return nil, typeIssue(ctx, "object for "+s.name, raw)
	}
	collect := IsCollectIssues(ctx)
	r := newRecord(s)
	var iss Issues
	for i, f := range s.fields {
		fp := path + "/" + escapeToken(f.name)
		fctx := withPath(ctx, fp)
		in, present := src.get(f.name)
		var (
			val any
			err error
		)
		switch {
		case present:
			r.presence[i] |= PresenceSeen
			if in == nil {
				r.presence[i] |= PresenceWasNull
			}
			val, err = f.typ.normalize(fctx, in)
		case f.hasDefault:
			r.presence[i] |= PresenceDefaultApplied
			val, err = f.typ.normalize(fctx, f.def)
		default:
			err = Issues{{Path: fp, Code: CodeRequired, Message: i18n.T(CodeRequired, nil), Hint: s.name + "." + f.name, Cause: ErrMissingField}}
		}
		if err != nil {
			iss = AppendIssues(iss, issuesFromErr(fp, err)...)
			if !collect {
				return nil, iss
			}
			continue
		}
		r.values[i] = val
	}

	var unknown []string
	for _, k := range src.keys {
		if _, known := s.index[k]; !known {
			unknown = append(unknown, k)
		}
	}
	for _, k := range unknown {
		switch s.unknown {
		case UnknownStrict:
			iss = AppendIssues(iss, Issue{Path: path + "/" + escapeToken(k), Code: CodeUnknownKey, Message: i18n.T(CodeUnknownKey, nil), Hint: s.name, Cause: ErrUnknownKey})
		case UnknownPassthrough:
			v, _ := src.get(k)
			r.setExtra(k, v)
		case UnknownStrip:
			// drop
		}
		if len(iss) > 0 && !collect {
			return nil, iss
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}

	for _, h := range s.hooks {
		if err := h(ctx, r); err != nil {
			return nil, issuesFromErr(pointer(path), err)
		}
	}
	if len(unknown) > 0 {
		emitUnknown(ctx, s, unknown)
	}
	return r, nil
}
