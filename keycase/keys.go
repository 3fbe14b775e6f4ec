package keycase

import (
	"context"
	"regexp"
	"slices"
	"sync"

	"github.com/unkn0wn-root/genlru/memo"
)

// Options control a key conversion. A nil *Options selects the defaults of
// each function.
type Options struct {
	// Recurse into nested maps and into maps held by slices.
	Deep bool
	// Keys left as-is: exact matches and pattern matches.
	Exclude        []string
	ExcludePattern []*regexp.Regexp
	// Dot-joined key paths (unconverted keys) whose values are not recursed into.
	StopPaths []string
	// CamelKeys only: produce PascalCase.
	Pascal bool
	// Memo used for key conversions; nil => package default.
	Memo *memo.Memo
}

var defaultMemo = sync.OnceValue(func() *memo.Memo {
	m, err := memo.New(memo.Options{})
	if err != nil {
		panic(err)
	}
	return m
})

// DefaultMemo returns the memo shared by conversions that don't set Options.Memo.
func DefaultMemo() *memo.Memo { return defaultMemo() }

// CamelKeys converts the keys of input to camelCase (or PascalCase with
// Options.Pascal). With nil opts the conversion is shallow.
func CamelKeys(ctx context.Context, input any, opts *Options) any {
	var o Options
	if opts != nil {
		o = *opts
	}
	mode, fn := memo.Camel, Camel
	if o.Pascal {
		mode, fn = memo.Pascal, Pascal
	}
	return newConverter(ctx, mode, fn, o).value(input, "")
}

// SnakeKeys converts the keys of input to snake_case. With nil opts the
// conversion is deep.
func SnakeKeys(ctx context.Context, input any, opts *Options) any {
	o := Options{Deep: true}
	if opts != nil {
		o = *opts
	}
	return newConverter(ctx, memo.Snake, Snake, o).value(input, "")
}

type converter struct {
	ctx  context.Context
	mode memo.Mode
	fn   func(string) string
	opts Options
	stop map[string]struct{}
	memo *memo.Memo
}

func newConverter(ctx context.Context, mode memo.Mode, fn func(string) string, o Options) *converter {
	c := &converter{ctx: ctx, mode: mode, fn: fn, opts: o, memo: o.Memo}
	if c.memo == nil {
		c.memo = defaultMemo()
	}
	if len(o.StopPaths) > 0 {
		c.stop = make(map[string]struct{}, len(o.StopPaths))
		for _, p := range o.StopPaths {
			c.stop[p] = struct{}{}
		}
	}
	return c
}

func (c *converter) value(v any, path string) any {
	switch t := v.(type) {
	case map[string]any:
		return c.object(t, path)
	case []any:
		out := make([]any, len(t))
		for i, el := range t {
			out[i] = c.value(el, path)
		}
		return out
	default:
		return v
	}
}

func (c *converter) object(m map[string]any, path string) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if c.opts.Deep {
			p := k
			if path != "" {
				p = path + "." + k
			}
			if _, stop := c.stop[p]; !stop {
				v = c.value(v, p)
			}
		}

		nk := k
		if !c.excluded(k) {
			nk = c.memo.Do(c.ctx, c.mode, k, c.fn)
		}
		if nk == "__proto__" {
			continue
		}
		out[nk] = v
	}
	return out
}

func (c *converter) excluded(k string) bool {
	if slices.Contains(c.opts.Exclude, k) {
		return true
	}
	for _, re := range c.opts.ExcludePattern {
		if re.MatchString(k) {
			return true
		}
	}
	return false
}
