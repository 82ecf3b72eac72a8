package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func mustPrinter(t *testing.T, ink int) *Printer {
	t.Helper()
	p, err := NewPrinter("HP LaserJet", ink, Ethernet)
	require.NoError(t, err)
	return p
}

func TestConstructionRejectsBlankModel(t *testing.T) {
	for _, model := range []string{"", "   ", "\t\n"} {
		_, err := NewPrinter(model, 50, Ethernet)
		assert.ErrorIs(t, err, ErrEmptyModel)

		_, err = NewScanner(model, 600, Ethernet)
		assert.ErrorIs(t, err, ErrEmptyModel)

		_, err = NewPrinterScanner(model, WiFi, 50, 600)
		assert.ErrorIs(t, err, ErrEmptyModel)
	}
}

func TestConstructionBounds(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		want error
	}{
		{"printer ink below", Spec{Kind: KindPrinter, Model: "P", InkLevel: intPtr(-1)}, ErrInkLevelOutOfRange},
		{"printer ink above", Spec{Kind: KindPrinter, Model: "P", InkLevel: intPtr(101)}, ErrInkLevelOutOfRange},
		{"printer ink empty ok", Spec{Kind: KindPrinter, Model: "P", InkLevel: intPtr(0)}, nil},
		{"printer ink full ok", Spec{Kind: KindPrinter, Model: "P", InkLevel: intPtr(100)}, nil},
		{"scanner dpi below", Spec{Kind: KindScanner, Model: "S", ScanResolution: intPtr(99)}, ErrScanResolutionOutOfRange},
		{"scanner dpi above", Spec{Kind: KindScanner, Model: "S", ScanResolution: intPtr(1201)}, ErrScanResolutionOutOfRange},
		{"scanner dpi bounds ok", Spec{Kind: KindScanner, Model: "S", ScanResolution: intPtr(1200)}, nil},
		{"combo ink above", Spec{Kind: KindPrinterScanner, Model: "M", InkLevel: intPtr(150)}, ErrInkLevelOutOfRange},
		{"combo dpi below", Spec{Kind: KindPrinterScanner, Model: "M", ScanResolution: intPtr(50)}, ErrScanResolutionOutOfRange},
		{"unknown connection", Spec{Kind: KindPrinter, Model: "P", Connection: "serial"}, ErrUnknownConnectionType},
		{"unknown kind", Spec{Kind: "fax", Model: "F"}, ErrUnknownKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := New(tt.spec)
			if tt.want == nil {
				require.NoError(t, err)
				assert.NotNil(t, d)
				return
			}
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, d)
		})
	}
}

func TestNewDefaults(t *testing.T) {
	d, err := New(Spec{Kind: KindPrinter, Model: "P"})
	require.NoError(t, err)
	assert.Equal(t, Ethernet, d.ConnectionType())
	assert.Equal(t, MaxInkLevel, d.(Printable).InkLevel())
	assert.False(t, d.IsConnected())

	d, err = New(Spec{Kind: KindScanner, Model: "S"})
	require.NoError(t, err)
	assert.Equal(t, Ethernet, d.ConnectionType())
	assert.Equal(t, MinScanResolution, d.(Scannable).ScanResolution())

	d, err = New(Spec{Kind: KindPrinterScanner, Model: "M"})
	require.NoError(t, err)
	assert.Equal(t, WiFi, d.ConnectionType())
	assert.Equal(t, MaxInkLevel, d.(Printable).InkLevel())
	assert.Equal(t, DefaultPrinterScannerResolution, d.(Scannable).ScanResolution())
}

func TestConnectDisconnect(t *testing.T) {
	p := mustPrinter(t, 80)
	assert.False(t, p.IsConnected())

	o := p.Connect()
	assert.True(t, o.Applied())
	assert.Equal(t, OpConnect, o.Op)
	assert.Contains(t, o.String(), "HP LaserJet")
	assert.Contains(t, o.String(), "ethernet")
	assert.True(t, p.IsConnected())

	// idempotent
	assert.True(t, p.Connect().Applied())
	assert.True(t, p.IsConnected())

	assert.True(t, p.Disconnect().Applied())
	assert.False(t, p.IsConnected())
	assert.True(t, p.Disconnect().Applied())
	assert.False(t, p.IsConnected())
}

func TestSetConnectionTypeWhileConnected(t *testing.T) {
	p := mustPrinter(t, 80)
	p.Connect()

	require.NoError(t, p.SetConnectionType(Bluetooth))
	assert.Equal(t, Bluetooth, p.ConnectionType())
	assert.True(t, p.IsConnected())
	assert.Contains(t, p.Connect().String(), "bluetooth")

	err := p.SetConnectionType("infrared")
	assert.ErrorIs(t, err, ErrUnknownConnectionType)
	assert.Equal(t, Bluetooth, p.ConnectionType())
}

func TestPrintGuards(t *testing.T) {
	t.Run("disconnected", func(t *testing.T) {
		p := mustPrinter(t, 80)
		o := p.Print("doc.pdf")
		assert.Equal(t, Declined, o.Status)
		assert.Equal(t, ReasonNotConnected, o.Reason)
		assert.ErrorIs(t, o.Err(), ErrNotConnected)
		assert.Equal(t, 80, p.InkLevel())
	})

	t.Run("connectivity checked before document", func(t *testing.T) {
		p := mustPrinter(t, 80)
		o := p.Print("  ")
		assert.Equal(t, ReasonNotConnected, o.Reason)
	})

	t.Run("empty document", func(t *testing.T) {
		p := mustPrinter(t, 80)
		p.Connect()
		o := p.Print(" \t")
		assert.Equal(t, ReasonEmptyDocument, o.Reason)
		assert.ErrorIs(t, o.Err(), ErrEmptyDocument)
		assert.Equal(t, 80, p.InkLevel())
	})

	t.Run("out of ink", func(t *testing.T) {
		for _, level := range []int{0, 3, EmptyInkThreshold} {
			p := mustPrinter(t, level)
			p.Connect()
			o := p.Print("doc.pdf")
			assert.Equal(t, ReasonOutOfInk, o.Reason)
			assert.Equal(t, level, p.InkLevel())
		}
	})
}

func TestPrintConsumesInk(t *testing.T) {
	tests := []struct {
		level    int
		want     int
		warnings int
	}{
		{level: 100, want: 95},
		{level: 11, want: 6},
		{level: LowInkThreshold, want: 5, warnings: 1},
		{level: EmptyInkThreshold + 1, want: 1, warnings: 1},
	}
	for _, tt := range tests {
		p := mustPrinter(t, tt.level)
		p.Connect()
		o := p.Print("doc.pdf")
		require.True(t, o.Applied(), "level %d", tt.level)
		assert.Equal(t, tt.want, p.InkLevel())
		assert.Len(t, o.Messages, 1+tt.warnings)
		if tt.warnings > 0 {
			assert.Contains(t, o.Messages[0], "low ink")
		}
		assert.GreaterOrEqual(t, p.InkLevel(), MinInkLevel)
	}
}

func TestPrintUntilEmpty(t *testing.T) {
	p := mustPrinter(t, 20)
	p.Connect()
	for i := 0; i < 10; i++ {
		p.Print("doc.pdf")
	}
	assert.Equal(t, EmptyInkThreshold, p.InkLevel())
}

func TestRefillInk(t *testing.T) {
	t.Run("out of range", func(t *testing.T) {
		p := mustPrinter(t, 50)
		for _, amount := range []int{-1, 101} {
			o := p.RefillInk(amount)
			assert.Equal(t, ReasonRefillOutOfRange, o.Reason)
			assert.ErrorIs(t, o.Err(), ErrRefillOutOfRange)
		}
		assert.Equal(t, 50, p.InkLevel())
	})

	t.Run("overflow", func(t *testing.T) {
		p := mustPrinter(t, 80)
		o := p.RefillInk(30)
		assert.Equal(t, ReasonRefillOverflow, o.Reason)
		assert.Contains(t, o.String(), "80%")
		assert.Equal(t, 80, p.InkLevel())
	})

	t.Run("printer refills while disconnected", func(t *testing.T) {
		p := mustPrinter(t, 50)
		o := p.RefillInk(50)
		assert.True(t, o.Applied())
		assert.Equal(t, 100, p.InkLevel())
	})

	t.Run("printer-scanner needs a connection", func(t *testing.T) {
		ps, err := NewPrinterScanner("M", WiFi, 50, 600)
		require.NoError(t, err)
		o := ps.RefillInk(10)
		assert.Equal(t, ReasonNotConnected, o.Reason)
		assert.Equal(t, 50, ps.InkLevel())

		ps.Connect()
		assert.True(t, ps.RefillInk(10).Applied())
		assert.Equal(t, 60, ps.InkLevel())
	})
}

func TestScan(t *testing.T) {
	s, err := NewScanner("Epson V39", 600, Ethernet)
	require.NoError(t, err)

	o := s.Scan("photo.jpg")
	assert.Equal(t, ReasonNotConnected, o.Reason)

	s.Connect()
	o = s.Scan("")
	assert.Equal(t, ReasonEmptyDocument, o.Reason)

	o = s.Scan("photo.jpg")
	assert.True(t, o.Applied())
	assert.Contains(t, o.String(), "600 dpi")
	assert.Nil(t, o.Err())
	assert.Equal(t, 600, s.ScanResolution())
}

func TestSetScanResolution(t *testing.T) {
	s, err := NewScanner("S", 300, USB)
	require.NoError(t, err)

	require.NoError(t, s.SetScanResolution(1200))
	assert.Equal(t, 1200, s.ScanResolution())

	assert.ErrorIs(t, s.SetScanResolution(1201), ErrScanResolutionOutOfRange)
	assert.ErrorIs(t, s.SetScanResolution(0), ErrScanResolutionOutOfRange)
	assert.Equal(t, 1200, s.ScanResolution())
}

func TestString(t *testing.T) {
	p := mustPrinter(t, 80)
	assert.Equal(t, "Printer HP LaserJet - Connection: ethernet (disconnected) - Ink level: 80%", p.String())

	ps, err := NewPrinterScanner("HP OfficeJet Pro", Ethernet, 50, 1200)
	require.NoError(t, err)
	ps.Connect()
	assert.Equal(t,
		"Multifunction device HP OfficeJet Pro - Connection: ethernet (connected) - Ink level: 50% - Resolution: 1200 dpi",
		ps.String())
}

func TestParseConnectionType(t *testing.T) {
	ct, err := ParseConnectionType(" WiFi ")
	require.NoError(t, err)
	assert.Equal(t, WiFi, ct)

	_, err = ParseConnectionType("serial")
	assert.ErrorIs(t, err, ErrUnknownConnectionType)

	for _, ct := range ConnectionTypes {
		assert.True(t, ct.Valid())
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("Printer-Scanner")
	require.NoError(t, err)
	assert.Equal(t, KindPrinterScanner, k)

	_, err = ParseKind("fax")
	assert.ErrorIs(t, err, ErrUnknownKind)
}
