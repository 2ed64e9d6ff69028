package imm

import (
	"os"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "imm",
	Level:  log.WarnLevel,
})

// SetLogger replaces the package logger used by UIs created afterwards.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Renderer is the interface for rendering draw data.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// UI manages the immediate-mode frame loop.
type UI struct {
	renderer   Renderer
	stateStore StateStore
	style      Style
	atlas      *FontAtlas
	log        *log.Logger
	ctx        *Context
}

// UIOption configures a UI instance.
type UIOption func(*UI)

// WithStyle sets the UI style.
func WithStyle(style Style) UIOption {
	return func(u *UI) { u.style = style }
}

// WithStateStore sets a custom state store.
func WithStateStore(store StateStore) UIOption {
	return func(u *UI) { u.stateStore = store }
}

// WithLogger sets the logger of the UI.
func WithLogger(l *log.Logger) UIOption {
	return func(u *UI) { u.log = l }
}

// WithFontAtlas sets the glyph atlas used to measure and draw text. It must
// match the texture reported by the renderer's FontTextureID.
func WithFontAtlas(a *FontAtlas) UIOption {
	return func(u *UI) { u.atlas = a }
}

// New creates a new UI drawing through renderer.
func New(renderer Renderer, opts ...UIOption) *UI {
	u := &UI{
		renderer:   renderer,
		stateStore: make(MapStateStore),
		style:      DefaultStyle(),
		log:        logger,
	}
	for _, opt := range opts {
		opt(u)
	}
	if u.atlas == nil {
		u.atlas = DefaultFontAtlas()
	}
	u.ctx = newContext(u.atlas, u.stateStore, u.log)
	return u
}

// Begin starts a new frame and returns the context to draw with.
// Call it once per frame before drawing any UI.
func (u *UI) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Context {
	ctx := u.ctx
	ctx.DrawList = AcquireDrawList()
	ctx.ForegroundDrawList = AcquireDrawList()
	ctx.FontTextureID = u.renderer.FontTextureID()
	ctx.style = u.style
	ctx.reset(input, displaySize, deltaTime)
	return ctx
}

// End finishes the frame and renders the UI.
func (u *UI) End() error {
	ctx := u.ctx
	if ctx.DrawList == nil {
		return nil
	}
	ctx.endFrame()

	err := u.renderer.Render(ctx.DrawList)
	if err == nil && !ctx.ForegroundDrawList.Empty() {
		err = u.renderer.Render(ctx.ForegroundDrawList)
	}

	ReleaseDrawList(ctx.DrawList)
	ReleaseDrawList(ctx.ForegroundDrawList)
	ctx.DrawList, ctx.ForegroundDrawList = nil, nil
	return err
}

// Context returns the frame context. Only valid between Begin and End.
func (u *UI) Context() *Context { return u.ctx }

// Style returns the current style.
func (u *UI) Style() Style { return u.style }

// SetStyle sets the style used from the next frame on.
func (u *UI) SetStyle(style Style) { u.style = style }

// Resize notifies the renderer of a display size change.
func (u *UI) Resize(width, height int) { u.renderer.Resize(width, height) }
