// gradient-sandbox is an interactive playground for the tween packages:
// it renders a non-linear color gradient, remaps the mouse position
// into gradient progress and tone frequency, throttles mouse-move
// handling and debounces resize handling.
//
// Controls: move the mouse to scrub the gradient, click to play the
// mapped tone, Esc or Ctrl+C to quit.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/tween/curve"
	"github.com/lixenwraith/tween/rate"
	"github.com/lixenwraith/tween/remap"
	"github.com/lixenwraith/tween/seq"
	"github.com/lixenwraith/tween/tint"
)

const (
	moveThrottle   = 16 * time.Millisecond // ~60 events/s ceiling
	resizeDebounce = 150 * time.Millisecond
	toneDuration   = 80 * time.Millisecond
	frameWindow    = 120 // frame duration samples kept for the stats line
)

var (
	debugFlag = flag.Bool("debug", false, "Log to logs/ instead of discarding")
	muteFlag  = flag.Bool("mute", false, "Disable audio")
	fromFlag  = flag.String("from", "#1030a0", "Gradient start color (hex)")
	toFlag    = flag.String("to", "#ffb000", "Gradient end color (hex)")
)

type size struct {
	width, height int
}

type Sandbox struct {
	screen        tcell.Screen
	width, height int

	// Gradient configuration
	from, to tint.RGB
	ramp     curve.Table

	// Cursor state, owned by the event loop goroutine
	cursorX, cursorY int

	// Debounced resizes land here; the event loop consumes them
	resizeCh chan size
	onResize func(size)

	// Frame duration samples in milliseconds
	frameMs []float64

	audioInit bool
}

func NewSandbox(from, to tint.RGB) (*Sandbox, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseMotionEvents)

	s := &Sandbox{
		screen: screen,
		from:   from,
		to:     to,
		// Ease-in ramp: progress rises slowly through the first half
		// of the bar, then accelerates
		ramp: curve.Table{
			Positions: []float64{0, 0.5, 0.8, 1},
			Values:    []float64{0, 0.2, 0.6, 1},
		},
		resizeCh: make(chan size, 1),
		frameMs:  make([]float64, 0, frameWindow),
	}
	s.width, s.height = screen.Size()
	s.cursorX = s.width / 2
	s.cursorY = s.height / 2

	// The debounced callback fires on a timer goroutine; it hands the
	// final size to the event loop instead of touching state directly
	s.onResize = rate.Debounce(rate.NewSystemClock(), resizeDebounce, func(sz size) {
		select {
		case s.resizeCh <- sz:
		default:
		}
	})

	if err := s.initAudio(); err != nil {
		// Non-fatal, the sandbox can run silent
		log.Printf("Audio initialization failed: %v", err)
	}

	return s, nil
}

func (s *Sandbox) initAudio() error {
	if *muteFlag {
		return nil
	}
	sampleRate := beep.SampleRate(44100)
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		s.audioInit = true
	}
	return err
}

// playTone plays a sine tone whose pitch follows the cursor: the left
// edge maps to A3 (220 Hz), the right edge to A5 (880 Hz).
func (s *Sandbox) playTone() {
	if !s.audioInit {
		return
	}

	freq := remap.MapRangeClamp(0, float64(s.width-1), float64(s.cursorX), 220, 880)

	sampleRate := beep.SampleRate(44100)
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		log.Printf("Tone generation failed: %v", err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(toneDuration), sine))
}

// progressAt converts a column to non-linear gradient progress.
func (s *Sandbox) progressAt(x int) float64 {
	linear := remap.MapRangeClamp(0, float64(s.width-1), float64(x), 0, 1)
	return s.ramp.Map(linear)
}

func (s *Sandbox) handleResize(sz size) {
	s.width, s.height = sz.width, sz.height
	s.cursorX = int(remap.Clamp(0, float64(s.cursorX), float64(s.width-1)))
	s.cursorY = int(remap.Clamp(0, float64(s.cursorY), float64(s.height-1)))
	s.screen.Sync()
	log.Printf("Resized to %dx%d", s.width, s.height)
}

func (s *Sandbox) recordFrame(d time.Duration) {
	if len(s.frameMs) == frameWindow {
		s.frameMs = s.frameMs[1:]
	}
	s.frameMs = append(s.frameMs, float64(d.Microseconds())/1000)
}

func (s *Sandbox) draw() {
	start := time.Now()
	s.screen.Clear()

	barY := s.height / 2

	// Gradient bar with a dimmed reflection below it
	for x := 0; x < s.width; x++ {
		p := s.progressAt(x)
		c := s.from.Lerp(s.to, p)
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
		s.screen.SetContent(x, barY, '█', nil, style)

		dim := c.Scale(0.35)
		dimStyle := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(dim.R), int32(dim.G), int32(dim.B)))
		s.screen.SetContent(x, barY+1, '▀', nil, dimStyle)
	}

	// Cursor marker above the bar
	if s.cursorX >= 0 && s.cursorX < s.width {
		s.screen.SetContent(s.cursorX, barY-1, '▼', nil, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	}

	// Readout: merged color string and remapped percentage at the cursor
	p := s.progressAt(s.cursorX)
	merged := tint.MergeRGB(
		tint.HexToRGBA(*fromFlag, 1),
		tint.HexToRGBA(*toFlag, 1),
		p,
	)
	percent := remap.MapRange(0, 1, p, 0, 100)
	s.drawText(0, 0, fmt.Sprintf("progress %5.1f%%  %s", percent, merged))

	if len(s.frameMs) > 0 {
		avg := seq.Sum(s.frameMs) / float64(len(s.frameMs))
		s.drawText(0, 1, fmt.Sprintf("frame ms min %.2f max %.2f avg %.2f",
			seq.Min(s.frameMs), seq.Max(s.frameMs), avg))
	}

	s.screen.Show()
	s.recordFrame(time.Since(start))
}

func (s *Sandbox) drawText(x, y int, text string) {
	for i, r := range text {
		s.screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}

func (s *Sandbox) handleInput(ev tcell.Event, onMove func(size)) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		onMove(size{x, y})
		if ev.Buttons()&tcell.Button1 != 0 {
			s.playTone()
		}

	case *tcell.EventResize:
		w, h := ev.Size()
		s.onResize(size{w, h})
	}

	return true
}

func (s *Sandbox) run() {
	// Mouse-move handling capped at one update per throttle window;
	// events inside the window are dropped, the next one lands
	onMove := rate.Throttle(rate.NewSystemClock(), moveThrottle, func(pos size) {
		s.cursorX = pos.width
		s.cursorY = pos.height
	})

	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- s.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !s.handleInput(ev, onMove) {
				return
			}

		case sz := <-s.resizeCh:
			s.handleResize(sz)

		case <-ticker.C:
			s.draw()
		}
	}
}

func (s *Sandbox) cleanup() {
	if s.audioInit {
		speaker.Close()
	}
	s.screen.Fini()
}

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	sandbox, err := NewSandbox(tint.FromHex(*fromFlag), tint.FromHex(*toFlag))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: cleanup below runs first during unwinding and
	// restores the terminal, so the report stays readable
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\nCRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer sandbox.cleanup()

	sandbox.run()
}
