package geo

import (
	"fmt"
	"strings"

	"roam/internal/domain"
)

// DecodePolyline converts an encoded polyline string into coordinates using
// the standard 1e5-precision algorithm the vendor APIs emit.
func DecodePolyline(s string) ([]domain.Coordinates, error) {
	var points []domain.Coordinates
	var lat, lng int32

	index := 0
	for index < len(s) {
		dLat, next, err := decodeValue(s, index)
		if err != nil {
			return nil, fmt.Errorf("decode polyline: %w", err)
		}
		index = next

		dLng, next, err := decodeValue(s, index)
		if err != nil {
			return nil, fmt.Errorf("decode polyline: %w", err)
		}
		index = next

		lat += dLat
		lng += dLng
		points = append(points, domain.Coordinates{
			Lat: float64(lat) / 1e5,
			Lng: float64(lng) / 1e5,
		})
	}

	return points, nil
}

// decodeValue reads one zig-zag varint starting at index and returns the
// signed delta plus the index of the next value.
func decodeValue(s string, index int) (int32, int, error) {
	var result uint32
	var shift uint

	for {
		if index >= len(s) {
			return 0, 0, fmt.Errorf("truncated input at byte %d", index)
		}
		b := uint32(s[index]) - 63
		index++

		result |= (b & 0x1f) << shift
		shift += 5

		if b < 0x20 {
			break
		}
	}

	if result&1 != 0 {
		return ^int32(result >> 1), index, nil
	}
	return int32(result >> 1), index, nil
}

// EncodePolyline is the inverse of DecodePolyline.
func EncodePolyline(points []domain.Coordinates) string {
	var sb strings.Builder
	var prevLat, prevLng int32

	for _, p := range points {
		lat := int32(round(p.Lat * 1e5))
		lng := int32(round(p.Lng * 1e5))

		encodeValue(&sb, lat-prevLat)
		encodeValue(&sb, lng-prevLng)

		prevLat, prevLng = lat, lng
	}

	return sb.String()
}

func encodeValue(sb *strings.Builder, v int32) {
	u := uint32(v) << 1
	if v < 0 {
		u = ^u
	}
	for u >= 0x20 {
		sb.WriteByte(byte((0x20|(u&0x1f))+63) & 0xff)
		u >>= 5
	}
	sb.WriteByte(byte(u + 63))
}

func round(f float64) float64 {
	if f < 0 {
		return float64(int64(f - 0.5))
	}
	return float64(int64(f + 0.5))
}
