package ssd

import (
	"github.com/labwc/labwc-core/buffer"
	"github.com/labwc/labwc-core/theme"
)

// IconTexture is the buffer.Impl behind a button icon's ScaledBuffer: one
// theme image rendered at the button's logical size. Equal compares the
// underlying image and dimensions, so visually identical icons (the same
// theme.Img at the same size) share rendered pixels across views via the
// shared list.
type IconTexture struct {
	Img     *theme.Img
	Width   int
	Height  int
	Padding int
}

func (t *IconTexture) CreateBuffer(scale float64) (buffer.Handle, error) {
	return theme.Render(t.Img, t.Width, t.Height, t.Padding, scale), nil
}

// Destroy releases this impl's reference on the decoded image; the last
// unlock drops the pixels.
func (t *IconTexture) Destroy() {
	if t.Img != nil && t.Img.Unlock() {
		t.Img.Drop()
	}
	t.Img = nil
}

func (t *IconTexture) Equal(other buffer.Impl) bool {
	o, ok := other.(*IconTexture)
	if !ok {
		return false
	}
	return t.Width == o.Width && t.Height == o.Height &&
		t.Padding == o.Padding && theme.Equal(t.Img, o.Img)
}

// TitleRenderer rasterizes a title string at an output scale. The font
// shaping backend is an external collaborator, the same boundary as
// theme.Decoder; active and inactive titlebars can use different fonts
// and colors, so the activity flag is part of the render key. Renderers
// ellipsize text wider than maxWidth.
type TitleRenderer interface {
	RenderTitle(text string, active bool, maxWidth int, scale float64) (buffer.Handle, error)
}

// TitleTexture is the buffer.Impl behind the titlebar's text buffer.
type TitleTexture struct {
	Text     string
	Active   bool
	MaxWidth int
	Renderer TitleRenderer
}

func (t *TitleTexture) CreateBuffer(scale float64) (buffer.Handle, error) {
	return t.Renderer.RenderTitle(t.Text, t.Active, t.MaxWidth, scale)
}

func (t *TitleTexture) Destroy() {}

func (t *TitleTexture) Equal(other buffer.Impl) bool {
	o, ok := other.(*TitleTexture)
	if !ok {
		return false
	}
	return t.Text == o.Text && t.Active == o.Active &&
		t.MaxWidth == o.MaxWidth && t.Renderer == o.Renderer
}

// IconSet holds one button kind's icon variants keyed by the 3-bit
// hovered/toggled/rounded state set. Themes rarely supply all eight
// combinations; Lookup falls back by discarding bits, rounded first,
// then hovered, until a variant exists.
type IconSet struct {
	variants map[StateFlag]*theme.Img
}

func NewIconSet() *IconSet {
	return &IconSet{variants: make(map[StateFlag]*theme.Img)}
}

func (s *IconSet) Set(state StateFlag, img *theme.Img) {
	s.variants[state] = img
}

func (s *IconSet) Lookup(state StateFlag) *theme.Img {
	for _, key := range []StateFlag{
		state,
		state &^ StateRounded,
		state &^ (StateRounded | StateHovered),
		StateNone,
	} {
		if img, ok := s.variants[key]; ok {
			return img
		}
	}
	return nil
}

// TextureConfig carries the theme-derived inputs AttachTextures needs.
type TextureConfig struct {
	Shared      *buffer.SharedList
	Icons       map[ButtonKind]*IconSet
	Renderer    TitleRenderer
	Measurer    TitleMeasurer
	Justify     Justify
	ButtonWidth int
	IconPadding int
}

// Textures owns the scaled pixel buffers behind an SSD's visible parts:
// one per button for its current icon variant, plus the title text. All
// SSDs built from the same theme register in one shared list, so equal
// primitives dedup across views.
type Textures struct {
	cfg TextureConfig

	title    *buffer.ScaledBuffer
	titleKey titleKey
	buttons  map[*Button]*buffer.ScaledBuffer
	states   map[*Button]StateFlag
	scale    float64
}

type titleKey struct {
	text   string
	active bool
	width  int
}

// AttachTextures binds the SSD to a shared scaled-buffer list, per-kind
// icon sets and a title renderer. Until called, the SSD is layout-only;
// headless paths and layout tests skip it.
func (s *SSD) AttachTextures(cfg TextureConfig) {
	s.Textures = &Textures{
		cfg:     cfg,
		buttons: make(map[*Button]*buffer.ScaledBuffer),
		states:  make(map[*Button]StateFlag),
	}
}

// EnterScale renders (or borrows) every texture for an output scale;
// called when the view's scene subtree enters an output. The first call
// after AttachTextures performs the initial render.
func (s *SSD) EnterScale(scale float64) {
	t := s.Textures
	if t == nil || scale <= 0 {
		return
	}
	t.scale = scale
	s.refreshTitle(scale)
	for _, b := range s.Buttons {
		s.refreshButton(b, scale)
	}
}

// RefreshTextures re-resolves which icon variant and title string each
// texture shows after a state change (hover flip, toggled bit, rename),
// at the most recent scale. No-op before the first EnterScale.
func (s *SSD) RefreshTextures() {
	if s.Textures == nil || s.Textures.scale == 0 {
		return
	}
	s.EnterScale(s.Textures.scale)
}

// InvalidateTextures drops every cached buffer and forces a re-render at
// the current scale, the theme-reload path.
func (s *SSD) InvalidateTextures() {
	t := s.Textures
	if t == nil {
		return
	}
	if t.title != nil {
		// Invalidate re-renders at the active scale on its own.
		t.title.Invalidate()
	}
	for _, sb := range t.buttons {
		sb.Invalidate()
	}
}

func (s *SSD) refreshButton(b *Button, scale float64) {
	t := s.Textures
	set := t.cfg.Icons[b.Kind]
	if set == nil {
		return
	}
	if sb, ok := t.buttons[b]; ok {
		if t.states[b] == b.state {
			sb.EnterScale(scale)
			return
		}
		sb.Destroy()
		delete(t.buttons, b)
	}
	img := set.Lookup(b.state)
	if img == nil {
		return
	}
	size := s.Theme.TitlebarHeight
	img.Lock()
	sb := buffer.NewScaledBuffer(&IconTexture{
		Img:     img,
		Width:   size,
		Height:  size,
		Padding: t.cfg.IconPadding,
	}, false)
	if t.cfg.Shared != nil {
		t.cfg.Shared.Register(sb)
	}
	t.buttons[b] = sb
	t.states[b] = b.state
	// A failed render is not fatal: the node stays zero-sized and the
	// view renders with client content only.
	sb.EnterScale(scale)
}

func (s *SSD) refreshTitle(scale float64) {
	t := s.Textures
	if t.cfg.Renderer == nil || t.cfg.Measurer == nil {
		return
	}
	width := s.View.ContentBox().Width
	left, right := s.groupWidths(width)
	layout := LayoutTitle(t.cfg.Measurer, s.View.Title(), width, left, right, t.cfg.Justify)
	if s.View.Active() {
		s.Cache.TruncatedActive = layout.Truncated
	} else {
		s.Cache.TruncatedInactive = layout.Truncated
	}

	key := titleKey{text: s.View.Title(), active: s.View.Active(), width: layout.Width}
	if t.title != nil && key == t.titleKey {
		t.title.EnterScale(scale)
		return
	}
	if t.title != nil {
		t.title.Destroy()
	}
	sb := buffer.NewScaledBuffer(&TitleTexture{
		Text:     key.text,
		Active:   key.active,
		MaxWidth: key.width,
		Renderer: t.cfg.Renderer,
	}, true)
	if t.cfg.Shared != nil {
		t.cfg.Shared.Register(sb)
	}
	t.title = sb
	t.titleKey = key
	sb.EnterScale(scale)
}

// groupWidths returns the pixels the left and right button groups occupy
// in a titlebar of the given width, hiding buttons from the outside in
// as it narrows. The right group (iconify/maximize/close) keeps
// priority; the left group truncates from the front, so the window-menu
// button — ordered last on the left — is the last to be hidden.
func (s *SSD) groupWidths(titlebarWidth int) (left, right int) {
	bw := s.Textures.cfg.ButtonWidth
	var l, r int
	for _, b := range s.Buttons {
		switch b.Kind {
		case ButtonWindowIcon, ButtonWindowMenu:
			l++
		default:
			r++
		}
	}
	r = VisibleButtons(r, bw, titlebarWidth)
	l = VisibleButtons(l, bw, titlebarWidth-r*bw)
	return l * bw, r * bw
}

func (t *Textures) destroy() {
	if t.title != nil {
		t.title.Destroy()
		t.title = nil
	}
	for _, sb := range t.buttons {
		sb.Destroy()
	}
	t.buttons = nil
	t.states = nil
}
