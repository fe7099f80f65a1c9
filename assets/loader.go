package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

// SampleRate is the rate of the shared audio context.
const SampleRate = 44100

var ErrNotFound = errors.New("assets: not found")

// Loader reads game resources from a file system rooted at the resources
// directory. The Or* helpers log failures and return nil so callers can
// skip drawing or playing the missing asset.
type Loader struct {
	fsys   fs.FS
	audio  *audio.Context
	logger *log.Logger
}

func NewLoader(fsys fs.FS, audioCtx *audio.Context, logger *log.Logger) *Loader {
	return &Loader{fsys: fsys, audio: audioCtx, logger: logger}
}

// LoadFile reads a resources-relative file.
func (l *Loader) LoadFile(p string) ([]byte, error) {
	clean := cleanAssetPath(p)
	b, err := fs.ReadFile(l.fsys, clean)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, clean)
	}
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", clean, err)
	}
	return b, nil
}

// DecodeImage loads a PNG or JPEG into CPU memory, e.g. for collision masks.
func (l *Loader) DecodeImage(p string) (image.Image, error) {
	b, err := l.LoadFile(p)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", p, err)
	}
	return img, nil
}

// LoadImage loads an image as a GPU texture.
func (l *Loader) LoadImage(p string) (*ebiten.Image, error) {
	img, err := l.DecodeImage(p)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

func (l *Loader) ImageOrNil(p string) *ebiten.Image {
	img, err := l.LoadImage(p)
	if err != nil {
		l.logger.Warn("load image", "path", p, "err", err)
		return nil
	}
	return img
}

// Frames loads count images named by pattern with indices starting at 0.
// Missing frames are nil.
func (l *Loader) Frames(pattern string, count int) []*ebiten.Image {
	frames := make([]*ebiten.Image, max(count, 0))
	for i := range frames {
		frames[i] = l.ImageOrNil(fmt.Sprintf(pattern, i))
	}
	return frames
}

// LoadAudioPlayer decodes a WAV or MP3 file into a player.
func (l *Loader) LoadAudioPlayer(p string) (*audio.Player, error) {
	stream, err := l.decodeAudio(p)
	if err != nil {
		return nil, err
	}
	player, err := l.audio.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("assets: player %s: %w", p, err)
	}
	return player, nil
}

func (l *Loader) AudioOrNil(p string) *audio.Player {
	player, err := l.LoadAudioPlayer(p)
	if err != nil {
		l.logger.Warn("load sound", "path", p, "err", err)
		return nil
	}
	return player
}

// LoadMusic decodes p into a player that loops forever.
func (l *Loader) LoadMusic(p string) (*audio.Player, error) {
	stream, err := l.decodeAudio(p)
	if err != nil {
		return nil, err
	}
	player, err := l.audio.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		return nil, fmt.Errorf("assets: music %s: %w", p, err)
	}
	return player, nil
}

type audioStream interface {
	Read([]byte) (int, error)
	Seek(int64, int) (int64, error)
	Length() int64
}

func (l *Loader) decodeAudio(p string) (audioStream, error) {
	b, err := l.LoadFile(p)
	if err != nil {
		return nil, err
	}
	reader := bytes.NewReader(b)

	var stream audioStream
	switch strings.ToLower(path.Ext(p)) {
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(l.audio.SampleRate(), reader)
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(l.audio.SampleRate(), reader)
	default:
		return nil, fmt.Errorf("assets: unsupported audio format %s", p)
	}
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", p, err)
	}
	return stream, nil
}

// LoadFont loads a TrueType font from the resources, falling back to Go
// Regular, and finally to the basic bitmap face.
func (l *Loader) LoadFont(p string, size float64) text.Face {
	src, err := l.fontSource(p)
	if err != nil {
		l.logger.Warn("load font", "path", p, "err", err)
		src, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return text.NewGoXFace(basicfont.Face7x13)
		}
	}
	return &text.GoTextFace{Source: src, Size: size}
}

func (l *Loader) fontSource(p string) (*text.GoTextFaceSource, error) {
	b, err := l.LoadFile(p)
	if err != nil {
		return nil, err
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: font %s: %w", p, err)
	}
	return src, nil
}

func cleanAssetPath(p string) string {
	if p == "" {
		return ""
	}
	s := filepath.ToSlash(p)
	if after, ok := strings.CutPrefix(s, "resources/"); ok {
		s = after
	}
	return path.Clean(strings.TrimPrefix(s, "/"))
}
