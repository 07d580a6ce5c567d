package sway

import (
	"encoding/json"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a capture of the frame being drawn. At the end of Draw
// the screen is written to ScreenshotDir as <frame>_<label>.png, and when a
// driver is attached its track poses go next to it as <frame>_<label>.json,
// so an image can be matched to the exact motion state that produced it.
func (s *Scene) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

// poseRecord is the JSON sidecar written with each screenshot.
type poseRecord struct {
	Frame  uint64      `json:"frame"`
	Tracks []trackPose `json:"tracks"`
}

type trackPose struct {
	Name      string  `json:"name"`
	Kind      string  `json:"kind"`
	Angle     float64 `json:"angle"`
	Direction int8    `json:"direction,omitempty"`
	Position  *Vec3   `json:"position,omitempty"`
}

func newPoseRecord(st State) poseRecord {
	rec := poseRecord{Frame: st.Frame, Tracks: make([]trackPose, len(st.Tracks))}
	for i, t := range st.Tracks {
		p := trackPose{Name: t.Name, Kind: t.Kind.String(), Angle: t.Angle}
		switch t.Kind {
		case TrackOscillate:
			p.Direction = int8(t.Direction)
		case TrackOrbit:
			p.Angle = t.Orbit.Angle
			pos := t.Orbit.Position()
			p.Position = &pos
		}
		rec.Tracks[i] = p
	}
	return rec
}

func (s *Scene) flushScreenshots(screen *ebiten.Image) {
	if len(s.screenshotQueue) == 0 {
		return
	}
	defer func() { s.screenshotQueue = s.screenshotQueue[:0] }()

	if err := os.MkdirAll(s.ScreenshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[sway] screenshot: %v\n", err)
		return
	}

	img := captureNRGBA(screen)
	var rec *poseRecord
	if s.driver != nil {
		r := newPoseRecord(s.driver.State())
		rec = &r
	}

	for _, label := range s.screenshotQueue {
		base := filepath.Join(s.ScreenshotDir, screenshotBase(s.presentedFrame, label))
		if err := writePNG(base+".png", img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[sway] screenshot: %v\n", err)
			continue
		}
		if rec != nil {
			if err := writePoses(base+".json", *rec); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "[sway] screenshot: %v\n", err)
			}
		}
	}
}

// captureNRGBA reads back the premultiplied screen and converts it to
// straight alpha for PNG encoding.
func captureNRGBA(screen *ebiten.Image) *image.NRGBA {
	b := screen.Bounds()
	src := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(src.Pix)
	dst := image.NewNRGBA(src.Rect)
	draw.Draw(dst, dst.Rect, src, image.Point{}, draw.Src)
	return dst
}

// screenshotBase is the file name of a capture without its extension. Frame
// numbers are zero-padded so captures sort in order.
func screenshotBase(frame uint64, label string) string {
	return fmt.Sprintf("%06d_%s", frame, sanitizeLabel(label))
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func writePoses(path string, rec poseRecord) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// sanitizeLabel keeps letters, digits, '-' and '.', maps everything else to
// '_', and names an empty label "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
