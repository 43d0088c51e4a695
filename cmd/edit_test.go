package cmd

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/performai/pcfg/internal/pcfg/editor"
	"github.com/performai/pcfg/internal/pcfg/errors"
	"github.com/performai/pcfg/internal/pcfg/form"
	"github.com/performai/pcfg/internal/pcfg/ini"
	"github.com/performai/pcfg/internal/pcfg/variant"
)

func TestPromptForms_Common(t *testing.T) {
	doc := ini.Parse("[dns]\ndefault=play.mumur.net\n")
	f := form.Load(doc, variant.SDEZ)

	ui := &fakeUI{t: t, answers: []interface{}{
		false,           // card reader
		nil,             // card path
		4,               // server: custom
		"my.server.lan", // custom address
		"",              // aimeDB
		nil,             // router
		nil,             // netenv
		"A69E01A8888",   // keychip
		"192.168.100.0", // subnet
	}}

	got, err := promptForms(ui, f)
	if err != nil {
		t.Fatalf("promptForms() error: %v", err)
	}

	want := f.Common
	want.AimeEnable = false
	want.ServerIndex = 4
	want.CustomServer = "my.server.lan"
	want.KeychipID = "A69E01A8888"
	want.Subnet = "192.168.100.0"
	if diff := cmp.Diff(want, got.Common); diff != "" {
		t.Errorf("Common mismatch (-want +got):\n%s", diff)
	}
	if got.Common.Server(variant.SDEZ) != "my.server.lan" {
		t.Errorf("Server() = %q", got.Common.Server(variant.SDEZ))
	}
	if len(ui.answers) != 0 {
		t.Errorf("%d answers left unused", len(ui.answers))
	}
}

func TestPromptForms_PresetSkipsCustomAddress(t *testing.T) {
	f := form.Load(ini.New(), variant.SDDT)
	ui := &fakeUI{t: t, answers: []interface{}{
		nil, nil, 0, nil, nil, nil, nil, nil, // common, RinNET preset
		nil, 1, "COM3", nil, nil, "",         // SDDT: serial output
	}}

	got, err := promptForms(ui, f)
	if err != nil {
		t.Fatalf("promptForms() error: %v", err)
	}
	if got.Common.Server(variant.SDDT) != "aqua.naominet.live" {
		t.Errorf("Server() = %q", got.Common.Server(variant.SDDT))
	}
	if !got.SDDT.LEDSerial || got.SDDT.SerialPort != "COM3" || got.SDDT.SerialBaud != form.DefaultSerialBaud {
		t.Errorf("SDDT = %+v", *got.SDDT)
	}
	if f.SDDT.LEDSerial {
		t.Error("promptForms modified the input form")
	}
}

func TestPromptForms_SDHD(t *testing.T) {
	f := form.Load(ini.New(), variant.SDHD)
	ui := &fakeUI{t: t, answers: []interface{}{
		nil, nil, nil, nil, nil, nil, nil, nil, // common
		2, true, "10", "20", "30", nil, false,  // SDHD
	}}

	got, err := promptForms(ui, f)
	if err != nil {
		t.Fatalf("promptForms() error: %v", err)
	}
	want := form.SDHD{
		Controller: form.Controller(2),
		IREnable:   true,
		SideRed:    10,
		SideGreen:  20,
		SideBlue:   30,
		SideRandom: false,
		RealAime:   false,
	}
	if diff := cmp.Diff(want, *got.SDHD); diff != "" {
		t.Errorf("SDHD mismatch (-want +got):\n%s", diff)
	}
}

func TestPromptForms_BadNumber(t *testing.T) {
	f := form.Load(ini.New(), variant.SDHD)
	ui := &fakeUI{t: t, answers: []interface{}{
		nil, nil, nil, nil, nil, nil, nil, nil,
		nil, nil, "red",
	}}

	_, err := promptForms(ui, f)
	if !errors.Is(err, errors.ErrInvalidValue) {
		t.Errorf("promptForms() error = %v, want ErrInvalidValue", err)
	}
}

func TestPromptForms_Cancelled(t *testing.T) {
	f := form.Load(ini.New(), variant.SDEZ)
	ui := &fakeUI{t: t, answers: []interface{}{errors.ErrCancelled}}

	if _, err := promptForms(ui, f); !errors.Is(err, errors.ErrCancelled) {
		t.Errorf("promptForms() error = %v, want ErrCancelled", err)
	}
}

func TestChooseVariant(t *testing.T) {
	path := writeConfig(t, "[aime]\nenable=1\n")

	t.Run("flag", func(t *testing.T) {
		e := editor.New()
		_ = e.Open(path)
		if err := chooseVariant(&fakeUI{t: t}, e, "sdhd"); err != nil {
			t.Fatal(err)
		}
		if e.Variant() != variant.SDHD {
			t.Errorf("Variant() = %s", e.Variant())
		}
	})

	t.Run("bad flag", func(t *testing.T) {
		e := editor.New()
		_ = e.Open(path)
		if err := chooseVariant(&fakeUI{t: t}, e, "XYZ"); !errors.Is(err, errors.ErrUnknownVariant) {
			t.Errorf("chooseVariant() error = %v, want ErrUnknownVariant", err)
		}
	})

	t.Run("prompt", func(t *testing.T) {
		e := editor.New()
		_ = e.Open(path)
		if err := chooseVariant(&fakeUI{t: t, answers: []interface{}{2}}, e, ""); err != nil {
			t.Fatal(err)
		}
		if e.Variant() != variant.All()[2] {
			t.Errorf("Variant() = %s, want %s", e.Variant(), variant.All()[2])
		}
	})
}

func TestEdit_EndToEnd(t *testing.T) {
	path := writeConfig(t, "[vfs]\namfs=..\\amfs\n\n[aime]\nenable=1\n")
	ui := &fakeUI{t: t, answers: []interface{}{
		nil,                                    // game: keep SDEZ
		nil, nil, 1, nil, nil, nil, "KEY", nil, // common, AquaDX China
		false,                                  // card
		true,                                   // save
	}}
	s := newTestSession(t, path, ui)

	err := s.applyAndSave(func(e *editor.Editor) error {
		if err := chooseVariant(s.ui, e, ""); err != nil {
			return err
		}
		f, err := promptForms(s.ui, e.Forms())
		if err != nil {
			return err
		}
		if err := e.ApplyForms(f); err != nil {
			return err
		}
		if _, _, err := promptCard(s.ui, e); err != nil {
			return err
		}
		ok, err := s.ui.Confirm("save", true)
		if err != nil || !ok {
			return errors.ErrCancelled
		}
		return nil
	})
	if err != nil {
		t.Fatalf("edit error: %v", err)
	}

	doc := ini.Parse(readConfig(t, path))
	if got := doc.GetString("dns", "default", ""); got != "aquadx.init.ink" {
		t.Errorf("dns.default = %q", got)
	}
	if got := doc.GetString("keychip", "id", ""); got != "KEY" {
		t.Errorf("keychip.id = %q", got)
	}
	if doc.Sections()[0] != "vfs" {
		t.Errorf("sections = %v, vfs should stay first", doc.Sections())
	}
}

func TestPromptCard(t *testing.T) {
	e := openEditor(t, "[aime]\naimePath=DEVICE\\aime.txt\n")

	content, edit, err := promptCard(&fakeUI{t: t, answers: []interface{}{nil}}, e)
	if err != nil || edit || content != "" {
		t.Errorf("declined promptCard() = %q, %v, %v", content, edit, err)
	}

	content, edit, err = promptCard(&fakeUI{t: t, answers: []interface{}{true, "0123"}}, e)
	if err != nil || !edit || content != "0123" {
		t.Errorf("promptCard() = %q, %v, %v", content, edit, err)
	}
	if _, ok, _ := e.LoadCard(); ok {
		t.Error("promptCard must not write the card file")
	}
}
