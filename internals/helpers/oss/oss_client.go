// internals/helpers/oss/oss_client.go
package helper

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/chai2010/webp"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

var (
	// batas ukuran uploader di controller (tetap dipakai sebagai guard ringan)
	maxUploadSize = int64(5 * 1024 * 1024)

	webpMaxW    = 1600
	webpMaxH    = 1600
	webpQuality = float32(80)
)

/* =======================================================================
   Decode gambar (jpeg/png/webp) dari []byte dengan sniff MIME
======================================================================= */

func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	var (
		img image.Image
		err error
	)

	switch {
	case strings.Contains(ct, "jpeg"):
		img, err = jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		img, err = png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		img, err = webp.Decode(bytes.NewReader(all))
	default:
		// fallback by extension
		ext := strings.ToLower(filepath.Ext(filename))
		switch ext {
		case ".jpg", ".jpeg":
			img, err = jpeg.Decode(bytes.NewReader(all))
		case ".png":
			img, err = png.Decode(bytes.NewReader(all))
		case ".webp":
			img, err = webp.Decode(bytes.NewReader(all))
		default:
			return nil, fmt.Errorf("format tidak didukung: %s / %s", ct, ext)
		}
	}
	return img, err
}

/* =======================================================================
   Resize helper (keep aspect). Pakai CatmullRom (kualitas bagus).
======================================================================= */

func resizeToFit(src image.Image, maxW, maxH int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if (maxW <= 0 || w <= maxW) && (maxH <= 0 || h <= maxH) {
		return src
	}

	scaleW := float64(maxW) / float64(w)
	scaleH := float64(maxH) / float64(h)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}
	nw := int(float64(w) * scale)
	nh := int(float64(h) * scale)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// ConvertToWebP: decode → resize keep-aspect → encode webp (lossy)
func ConvertToWebP(r io.Reader, filename string) ([]byte, error) {
	all, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	img, err := decodeImage(all, filename)
	if err != nil {
		return nil, err
	}

	img = resizeToFit(img, webpMaxW, webpMaxH)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Lossless: false, Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

/* =======================================================================
   OSS Service
======================================================================= */

type OSSService struct {
	Client     *oss.Client
	Bucket     *oss.Bucket
	Endpoint   string
	BucketName string
	Prefix     string // optional: "uploads/"
}

func NewOSSServiceFromEnv(prefix string) (*OSSService, error) {
	endpoint := getEnv("ALI_OSS_ENDPOINT")
	ak := getEnv("ALI_OSS_ACCESS_KEY")
	sk := getEnv("ALI_OSS_SECRET_KEY")
	bucketName := getEnv("ALI_OSS_BUCKET")
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET")
	}

	client, err := oss.New(endpoint, ak, sk)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}

	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	return &OSSService{
		Client:     client,
		Bucket:     bkt,
		Endpoint:   endpoint,
		BucketName: bucketName,
		Prefix:     strings.Trim(prefix, "/"),
	}, nil
}

func (s *OSSService) PublicURL(key string) string {
	host := strings.TrimPrefix(strings.TrimPrefix(s.Endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, host, key)
}

func ExtractKeyFromPublicURL(publicURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(publicURL))
	if err != nil {
		return "", err
	}
	key := strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", fmt.Errorf("url tanpa object key: %s", publicURL)
	}
	return key, nil
}

/* =======================================================================
   Upload helpers
======================================================================= */

// UploadAsWebP: recompress ke webp, lalu upload {keyPrefix}/{random}.webp
func (s *OSSService) UploadAsWebP(ctx context.Context, fh *multipart.FileHeader, keyPrefix string) (string, error) {
	if fh == nil {
		return "", fmt.Errorf("nil file header")
	}
	if fh.Size > maxUploadSize {
		return "", fmt.Errorf("file too large (max %d bytes)", maxUploadSize)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer src.Close()

	webpData, err := ConvertToWebP(src, fh.Filename)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "format tidak didukung") {
			return "", fiber.NewError(fiber.StatusUnsupportedMediaType, "Unsupported image format (pakai jpg/png/webp)")
		}
		return "", err
	}

	key := joinParts(s.Prefix, strings.Trim(keyPrefix, "/"), randomName()+".webp")
	if err := s.Bucket.PutObject(key, bytes.NewReader(webpData), oss.ContentType("image/webp")); err != nil {
		return "", fmt.Errorf("oss put: %w", err)
	}
	return s.PublicURL(key), nil
}

// UploadPaymentProof: bukti transfer penghuni → "invoices/{invoice_id}/payment-proof"
func UploadPaymentProof(ctx context.Context, invoiceID string, fh *multipart.FileHeader) (string, error) {
	if strings.TrimSpace(invoiceID) == "" {
		return "", fiber.NewError(fiber.StatusBadRequest, "invoice_id kosong")
	}

	svc, err := NewOSSServiceFromEnv("")
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadGateway, "Object storage belum dikonfigurasi")
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	dir := joinParts("invoices", invoiceID, "payment-proof")
	url, err := svc.UploadAsWebP(ctx, fh, dir)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return "", fe
		}
		log.Printf("[OSS] upload payment proof gagal: %v", err)
		return "", fiber.NewError(fiber.StatusBadGateway, "Gagal upload bukti pembayaran")
	}
	return url, nil
}

// UploadMaintenanceImage: foto laporan kerusakan → "maintenance/{room_id}/images"
func UploadMaintenanceImage(ctx context.Context, roomID uuid.UUID, fh *multipart.FileHeader) (string, error) {
	if roomID == uuid.Nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "room_id kosong/invalid")
	}

	svc, err := NewOSSServiceFromEnv("")
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadGateway, "Object storage belum dikonfigurasi")
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	dir := joinParts("maintenance", roomID.String(), "images")
	url, err := svc.UploadAsWebP(ctx, fh, dir)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return "", fe
		}
		log.Printf("[OSS] upload foto maintenance gagal: %v", err)
		return "", fiber.NewError(fiber.StatusBadGateway, "Gagal upload foto")
	}
	return url, nil
}

/* =======================================================================
   Delete helpers by public URL
======================================================================= */

func (s *OSSService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	if strings.TrimSpace(publicURL) == "" {
		return fmt.Errorf("empty public url")
	}
	key, err := ExtractKeyFromPublicURL(publicURL)
	if err != nil {
		return fmt.Errorf("extract key: %w", err)
	}
	return s.Bucket.DeleteObject(key)
}

/* =======================================================================
   Util kecil
======================================================================= */

func joinParts(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(p, "/")
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "/")
}

func randomName() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return time.Now().Format("20060102") + "-" + hex.EncodeToString(b)
}
