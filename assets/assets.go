// Package assets loads the aquarium background and the fish sprite pool.
package assets

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ErrEmptySpritePool is returned when the sprite directory holds no files.
var ErrEmptySpritePool = errors.New("assets: sprite pool is empty")

// Source names the files to load inside an fs.FS.
type Source struct {
	Background string
	Sprites    string // directory; every regular, non-hidden file in it is a sprite
	Workers    int    // concurrent decodes; values below 1 mean 1
}

// Pack is the decoded artwork. Sprites are ordered by file name and Names
// holds the file each one came from.
type Pack struct {
	Background image.Image
	Sprites    []image.Image
	Names      []string
}

// Load decodes the background and every sprite in src. Sprites are decoded
// concurrently but keep the lexical order of their file names.
func Load(ctx context.Context, fsys fs.FS, src Source) (*Pack, error) {
	entries, err := fs.ReadDir(fsys, src.Sprites)
	if err != nil {
		return nil, fmt.Errorf("read sprite dir %s: %w", src.Sprites, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Type().IsRegular() && !strings.HasPrefix(entry.Name(), ".") {
			names = append(names, path.Join(src.Sprites, entry.Name()))
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptySpritePool, src.Sprites)
	}
	sort.Strings(names)

	pack := &Pack{
		Sprites: make([]image.Image, len(names)),
		Names:   names,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(src.Workers, 1))

	g.Go(func() error {
		img, err := decode(fsys, src.Background)
		pack.Background = img
		return err
	})
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := decode(fsys, name)
			pack.Sprites[i] = img
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pack, nil
}

// Sizes returns the pixel extent of every sprite, in pool order.
func (p *Pack) Sizes() []image.Point {
	sizes := make([]image.Point, len(p.Sprites))
	for i, img := range p.Sprites {
		sizes[i] = img.Bounds().Size()
	}
	return sizes
}

func decode(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}
