// Package listing liste sayfalarının ortak türetme hattını içerir:
// arama -> kategorik filtre/sıralama -> sayfalama. Her kontrol değişiminde
// tam listeden tek bir saf fonksiyon zinciriyle yeniden türetilir; arama ve
// kategorik filtre AND olarak birleşir.
package listing

import (
	"sort"
	"strings"
)

// Page türetilmiş görünür dilim ve sayfalama meta bilgisi.
type Page[T any] struct {
	Items     []T `json:"items"`
	Total     int `json:"total"`
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
}

// Search büyük/küçük harf duyarsız substring araması yapar.
// Boş sorgu filtre uygulamaz.
func Search[T any](items []T, query string, key func(T) string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}

	filtered := make([]T, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(strings.TrimSpace(key(it))), q) {
			filtered = append(filtered, it)
		}
	}
	return filtered
}

// Filter verilen koşulu sağlayan elemanları döndürür (kategorik filtre modu).
func Filter[T any](items []T, keep func(T) bool) []T {
	filtered := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			filtered = append(filtered, it)
		}
	}
	return filtered
}

// OrderBy listenin sıralı bir kopyasını döndürür; girdi değişmez.
func OrderBy[T any](items []T, less func(a, b T) bool, desc bool) []T {
	ordered := make([]T, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool {
		if desc {
			return less(ordered[j], ordered[i])
		}
		return less(ordered[i], ordered[j])
	})
	return ordered
}

// Paginate 1-indexli sayfa dilimini döndürür. Sayfa üst sınıra karşı
// kırpılmaz: aralık dışı sayfa boş dilim verir, hata değil.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if page < 1 {
		page = 1
	}

	total := len(items)
	pageCount := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	end := page * pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page[T]{
		Items:     items[start:end],
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
		PageCount: pageCount,
	}
}
