package oss

import (
	"bytes"
	"fmt"
	"image"
	"strconv"

	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// Optional WebP re-encode for screenshots. Phone cameras routinely
// produce 3-4 MB JPEGs; recompressing keeps the bucket small. Off by
// default so the raw-upload contract stays the baseline.

func webpEnabled() bool {
	v := getEnv("SCREENSHOT_WEBP")
	return v == "1" || v == "true"
}

func envInt(key string, def int) int {
	if v := getEnv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func envFloat(key string, def float32) float32 {
	if v := getEnv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f > 0 {
			return float32(f)
		}
	}
	return def
}

func reencodeWebP(all []byte) ([]byte, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}

	img, _, err := image.Decode(bytes.NewReader(all))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	maxW := envInt("SCREENSHOT_WEBP_MAX_W", 1600)
	maxH := envInt("SCREENSHOT_WEBP_MAX_H", 1600)
	quality := envFloat("SCREENSHOT_WEBP_QUALITY", 80)

	b := img.Bounds()
	if b.Dx() > maxW || b.Dy() > maxH {
		img = imaging.Fit(img, maxW, maxH, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("webp encode: %w", err)
	}
	return buf.Bytes(), nil
}
