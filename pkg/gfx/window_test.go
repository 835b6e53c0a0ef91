package gfx

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/kjkrol/gltriangle/internal/platform"
)

type fakeWrapper struct {
	batches     [][]platform.Event
	shouldClose bool
	swaps       int
	closed      int
	shows       int
	width       int
	height      int
}

func (f *fakeWrapper) Show() {
	f.shows++
}

func (f *fakeWrapper) Close() {
	f.closed++
}

func (f *fakeWrapper) PollEvents() []platform.Event {
	if len(f.batches) == 0 {
		return nil
	}
	next := f.batches[0]
	f.batches = f.batches[1:]
	return next
}

func (f *fakeWrapper) ShouldClose() bool {
	return f.shouldClose
}

func (f *fakeWrapper) SetShouldClose(v bool) {
	f.shouldClose = v
}

func (f *fakeWrapper) SwapBuffers() {
	f.swaps++
}

func (f *fakeWrapper) FramebufferSize() (int, int) {
	return f.width, f.height
}

type fakeRenderer struct {
	renders int
	closed  int
	sizes   [][2]int
}

func (r *fakeRenderer) Render(w *Window) {
	r.renders++
	width, height := w.FramebufferSize()
	r.sizes = append(r.sizes, [2]int{width, height})
}

func (r *fakeRenderer) Close() {
	r.closed++
}

func TestRun_StopsOnEscape(t *testing.T) {
	wrapper := &fakeWrapper{
		width:  720,
		height: 480,
		batches: [][]platform.Event{
			{platform.KeyPress{Code: 65, Label: "a"}},
			{platform.KeyRelease{Code: 65, Label: "a"}},
			{platform.KeyPress{Code: platform.KeyEscape}},
			{platform.KeyPress{Code: 66}},
		},
	}
	renderer := &fakeRenderer{}
	w, err := newWindow(wrapper, func(*Window) (Renderer, error) { return renderer, nil })
	if err != nil {
		t.Fatal(err)
	}

	var forwarded []Event
	w.Run(CloseOnEscape(w, func(e Event) { forwarded = append(forwarded, e) }))

	if w.Frames() != 3 || wrapper.swaps != 3 || renderer.renders != 3 {
		t.Fatalf("frames=%d swaps=%d renders=%d, want 3 each", w.Frames(), wrapper.swaps, renderer.renders)
	}
	if len(forwarded) != 2 {
		t.Fatalf("forwarded %d events, want 2 (escape is consumed)", len(forwarded))
	}
	if _, ok := forwarded[0].(KeyPress); !ok {
		t.Errorf("forwarded[0] = %T, want KeyPress", forwarded[0])
	}
	if _, ok := forwarded[1].(KeyRelease); !ok {
		t.Errorf("forwarded[1] = %T, want KeyRelease", forwarded[1])
	}
	if !w.Stopped() {
		t.Error("window should report stopped")
	}
	for _, size := range renderer.sizes {
		if size != [2]int{720, 480} {
			t.Errorf("renderer saw framebuffer %v, want [720 480]", size)
		}
	}

	w.Close()
	if renderer.closed != 1 || wrapper.closed != 1 {
		t.Errorf("renderer closed %d, wrapper closed %d, want 1 each", renderer.closed, wrapper.closed)
	}
}

func TestRun_StopsOnCloseRequest(t *testing.T) {
	wrapper := &fakeWrapper{
		batches: [][]platform.Event{
			nil,
			{platform.DestroyNotify{}},
		},
	}
	w, err := newWindow(wrapper, nil)
	if err != nil {
		t.Fatal(err)
	}
	var got []Event
	w.Run(func(e Event) {
		got = append(got, e)
		if _, ok := e.(DestroyNotify); ok {
			wrapper.shouldClose = true
		}
	})
	if w.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", w.Frames())
	}
	if len(got) != 1 {
		t.Errorf("handled %d events, want 1", len(got))
	}
}

func TestRunFrame_DrainMax(t *testing.T) {
	wrapper := &fakeWrapper{
		batches: [][]platform.Event{
			{platform.KeyPress{Code: 1}, platform.KeyPress{Code: 2}, platform.KeyPress{Code: 3}},
		},
	}
	w, err := newWindow(wrapper, nil)
	if err != nil {
		t.Fatal(err)
	}
	w.SetEventsStrategy(DrainMax(2))

	var codes []uint64
	handle := func(e Event) { codes = append(codes, e.(KeyPress).Code) }
	w.RunFrame(handle)
	if len(codes) != 2 {
		t.Fatalf("first frame handled %v, want 2 events", codes)
	}
	w.RunFrame(handle)
	if len(codes) != 3 || codes[2] != 3 {
		t.Fatalf("second frame handled %v, want the queued third event", codes)
	}
}

func TestWindow_Show(t *testing.T) {
	wrapper := &fakeWrapper{}
	w, err := newWindow(wrapper, nil)
	if err != nil {
		t.Fatal(err)
	}
	if wrapper.shows != 0 {
		t.Fatalf("window shown %d times before Show", wrapper.shows)
	}
	w.Show()
	if wrapper.shows != 1 {
		t.Errorf("wrapper shown %d times, want 1", wrapper.shows)
	}
}

func TestWindow_SetRendererClosesPrevious(t *testing.T) {
	wrapper := &fakeWrapper{}
	first := &fakeRenderer{}
	w, err := newWindow(wrapper, func(*Window) (Renderer, error) { return first, nil })
	if err != nil {
		t.Fatal(err)
	}
	second := &fakeRenderer{}
	w.SetRenderer(second)
	if first.closed != 1 {
		t.Fatalf("previous renderer closed %d times, want 1", first.closed)
	}

	w.RunFrame(nil)
	if first.renders != 0 || second.renders != 1 {
		t.Errorf("renders: first=%d second=%d, want 0 and 1", first.renders, second.renders)
	}

	w.Close()
	if first.closed != 1 || second.closed != 1 {
		t.Errorf("closed: first=%d second=%d, want 1 each", first.closed, second.closed)
	}
}

func TestNewWindow_FactoryError(t *testing.T) {
	wrapper := &fakeWrapper{}
	boom := errors.New("boom")
	_, err := newWindow(wrapper, func(*Window) (Renderer, error) { return nil, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("newWindow() = %v, want wrapped boom", err)
	}
	if wrapper.closed != 1 {
		t.Errorf("wrapper closed %d times, want 1", wrapper.closed)
	}
}

func TestNewWindow_NilWrapper(t *testing.T) {
	if _, err := newWindow(nil, nil); !errors.Is(err, platform.ErrCreateWindow) {
		t.Fatalf("newWindow(nil) = %v, want ErrCreateWindow", err)
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		in   platform.Event
		want Event
	}{
		{platform.KeyPress{Code: 256, Scancode: 9, Mods: 1, Label: ""}, KeyPress{Code: 256, Scancode: 9, Mods: 1}},
		{platform.KeyRepeat{Code: 65, Label: "a"}, KeyRepeat{Code: 65, Label: "a"}},
		{platform.FramebufferResize{Width: 10, Height: 20}, FramebufferResize{Width: 10, Height: 20}},
		{platform.DestroyNotify{}, DestroyNotify{}},
		{struct{}{}, UnexpectedEvent{}},
	}
	for _, tt := range tests {
		if got := convert(tt.in); got != tt.want {
			t.Errorf("convert(%#v) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}

func TestLogEvents(t *testing.T) {
	var buf bytes.Buffer
	log := LogEvents(slog.New(slog.NewTextHandler(&buf, nil)))
	log(KeyPress{Code: 65, Mods: 2, Label: "a"})
	log(DestroyNotify{})

	out := buf.String()
	for _, want := range []string{"code=65", "action=press", "mods=2", "window close requested"} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q does not contain %q", out, want)
		}
	}
}
