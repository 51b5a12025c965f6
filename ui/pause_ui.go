package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/automoto/grubmaze/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// PauseUI holds the ebitenui panel shown while the game is paused
type PauseUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnResume  func()
	OnNewMaze func()

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	buttonFace text.Face
}

// NewPauseUI builds the pause panel. Each entry of cfg.Pause.MenuOptions
// becomes a button; "Resume" and "New Maze" are wired to the callbacks.
func NewPauseUI(onResume, onNewMaze func()) (*PauseUI, error) {
	pui := &PauseUI{
		OnResume:  onResume,
		OnNewMaze: onNewMaze,
	}

	if err := pui.loadFonts(); err != nil {
		return nil, err
	}
	pui.buildUI()

	return pui, nil
}

func (pui *PauseUI) loadFonts() error {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load pause font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return fmt.Errorf("load pause title font: %w", err)
	}

	pui.titleFace = &text.GoTextFace{Source: bold, Size: 28}
	pui.buttonFace = &text.GoTextFace{Source: regular, Size: 16}
	return nil
}

func (pui *PauseUI) buildUI() {
	// Root container with AnchorLayout to fill the screen
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Pause.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(24)),
			widget.RowLayoutOpts.Spacing(cfg.Pause.MenuItemGap),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	title := widget.NewText(
		widget.TextOpts.Text("Paused", &pui.titleFace, cfg.Pause.TitleColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{
			Position: widget.RowLayoutPositionCenter,
		})),
	)
	panel.AddChild(title)

	for _, option := range cfg.Pause.MenuOptions {
		handler := pui.handlerFor(option)
		if handler == nil {
			continue
		}
		panel.AddChild(pui.button(option, handler))
	}

	hint := widget.NewText(
		widget.TextOpts.Text("Esc / P: Resume", &pui.buttonFace, cfg.Pause.TextColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{
			Position: widget.RowLayoutPositionCenter,
		})),
	)
	panel.AddChild(hint)

	rootContainer.AddChild(panel)
	pui.UI = &ebitenui.UI{Container: rootContainer}
}

func (pui *PauseUI) handlerFor(option string) func() {
	switch option {
	case "Resume":
		return pui.OnResume
	case "New Maze":
		return pui.OnNewMaze
	}
	return nil
}

func (pui *PauseUI) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Pause.ButtonWidth, cfg.Pause.ButtonHeight),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &pui.buttonFace, &widget.ButtonTextColor{
			Idle:    cfg.Pause.TextColor,
			Hover:   cfg.Pause.TextColor,
			Pressed: color.RGBA{20, 20, 30, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.Pause.ButtonColorIdle),
		Hover:    image.NewNineSliceColor(cfg.Pause.ButtonColorHover),
		Pressed:  image.NewNineSliceColor(cfg.Pause.ButtonColorPressed),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

// Update advances the ebitenui state; call it only while paused.
func (pui *PauseUI) Update() {
	pui.UI.Update()
}
