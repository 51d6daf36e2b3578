package timeago

import "time"

// Hook observes or rewrites Trans calls
type Hook interface {
	BeforeTrans(ctx *HookContext)
	AfterTrans(ctx *HookContext)
}

// HookContext carries one Trans call through its hooks. Unit, Count and
// Category are only set once selection succeeded.
type HookContext struct {
	Locale   string
	Past     time.Time
	Elapsed  int64
	Unit     Unit
	Count    int64
	Category Category
	Result   string
	Error    error
	Metadata map[string]any
}

func (ctx *HookContext) SetMetadata(key string, value any) {
	if ctx == nil || key == "" {
		return
	}
	if ctx.Metadata == nil {
		ctx.Metadata = make(map[string]any)
	}
	ctx.Metadata[key] = value
}

func (ctx *HookContext) MetadataValue(key string) (any, bool) {
	if ctx == nil || ctx.Metadata == nil {
		return nil, false
	}
	val, ok := ctx.Metadata[key]
	return val, ok
}

// HookFuncs lets plain functions act as a Hook
type HookFuncs struct {
	Before func(ctx *HookContext)
	After  func(ctx *HookContext)
}

func (h HookFuncs) BeforeTrans(ctx *HookContext) {
	if h.Before != nil {
		h.Before(ctx)
	}
}

func (h HookFuncs) AfterTrans(ctx *HookContext) {
	if h.After != nil {
		h.After(ctx)
	}
}

const (
	metadataPhraseFallback = "phrase.fallback"
	metadataTemplate       = "phrase.template"
)
