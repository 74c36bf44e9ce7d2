package ledger

import "strings"

var terbilangUnits = [12]string{"", "Satu", "Dua", "Tiga", "Empat", "Lima", "Enam", "Tujuh", "Delapan", "Sembilan", "Sepuluh", "Sebelas"}

// terbilang recursively decomposes n into Indonesian number words. The
// fragments carry leading spaces; AmountInWords normalizes them.
func terbilang(n int64) string {
	switch {
	case n < 12:
		return " " + terbilangUnits[n]
	case n < 20:
		return terbilang(n-10) + " Belas"
	case n < 100:
		return terbilang(n/10) + " Puluh" + terbilang(n%10)
	case n < 200:
		return " Seratus" + terbilang(n-100)
	case n < 1000:
		return terbilang(n/100) + " Ratus" + terbilang(n%100)
	case n < 2000:
		return " Seribu" + terbilang(n-1000)
	case n < 1000000:
		return terbilang(n/1000) + " Ribu" + terbilang(n%1000)
	case n < 1000000000:
		return terbilang(n/1000000) + " Juta" + terbilang(n%1000000)
	}
	// Amounts of a billion Rupiah and up are outside the printed-document
	// contract and come back empty.
	return ""
}

// AmountInWords spells out a whole-Rupiah amount for the "terbilang" line
// on printed documents, e.g. 1500000 -> "Satu Juta Lima Ratus Ribu".
// Zero and negative amounts, and amounts >= 1 billion, return "".
func AmountInWords(n int64) string {
	if n < 0 {
		return ""
	}
	return strings.Join(strings.Fields(terbilang(n)), " ")
}
