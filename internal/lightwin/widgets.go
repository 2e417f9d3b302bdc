package lightwin

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"trafficlight/internal/i18n"
	"trafficlight/internal/light"
	"trafficlight/internal/sizing"
)

// drawLight рисует окно целиком: заголовок, корпус, панель таймера и кнопки.
func drawLight(gtx layout.Context, th *material.Theme, cfg Config, view light.View, timerVisible bool, ctl *controls) {
	drawBackground(gtx, cfg.BGColor)

	children := []layout.FlexChild{
		fixedHeight(unit.Dp(sizing.TitleBarHeight), func(gtx layout.Context) layout.Dimensions {
			return drawTitleBar(gtx, th, cfg, &ctl.minimize, &ctl.close)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return drawHousing(gtx, cfg, view, &ctl.lamps)
		}),
	}
	if timerVisible {
		children = append(children, fixedHeight(unit.Dp(sizing.TimerPanelHeight), func(gtx layout.Context) layout.Dimensions {
			return drawTimerPanel(gtx, th, cfg, view)
		}))
	}
	children = append(children, fixedHeight(unit.Dp(sizing.ControlBarHeight), func(gtx layout.Context) layout.Dimensions {
		return drawControlBar(gtx, th, cfg, view, ctl)
	}))

	layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
}

// fixedHeight размещает w с точной высотой.
func fixedHeight(h unit.Dp, w layout.Widget) layout.FlexChild {
	return layout.Rigid(func(gtx layout.Context) layout.Dimensions {
		px := gtx.Dp(h)
		gtx.Constraints.Min.Y, gtx.Constraints.Max.Y = px, px
		gtx.Constraints.Min.X = gtx.Constraints.Max.X
		w(gtx)
		return layout.Dimensions{Size: image.Pt(gtx.Constraints.Max.X, px)}
	})
}

// drawBackground рисует прямоугольный фон.
func drawBackground(gtx layout.Context, col color.NRGBA) {
	rect := clip.Rect{Max: gtx.Constraints.Max}
	paint.FillShape(gtx.Ops, col, rect.Op())
}

// drawTitleBar рисует перетаскиваемый заголовок с кнопками свернуть и закрыть.
func drawTitleBar(gtx layout.Context, th *material.Theme, cfg Config, minimizeBtn, closeBtn *widget.Clickable) layout.Dimensions {
	// Перетаскивание заголовка двигает окно без рамки
	area := clip.Rect{Max: gtx.Constraints.Max}.Push(gtx.Ops)
	system.ActionInputOp(system.ActionMove).Add(gtx.Ops)
	area.Pop()

	return layout.Inset{Left: unit.Dp(12), Right: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				lbl := material.Label(th, unit.Sp(14), i18n.T("window_title"))
				lbl.Color = cfg.TextColor
				lbl.Font.Weight = font.Medium
				return layout.W.Layout(gtx, lbl.Layout)
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return drawMinimizeButton(gtx, minimizeBtn, cfg.TextDimColor)
				})
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return drawCloseButton(gtx, closeBtn, cfg.TextDimColor)
				})
			}),
		)
	})
}

// drawHousing рисует три лампы в скруглённом корпусе.
func drawHousing(gtx layout.Context, cfg Config, view light.View, lamps *[3]widget.Clickable) layout.Dimensions {
	size := gtx.Constraints.Max
	pad := gtx.Dp(unit.Dp(12))
	inset := gtx.Dp(unit.Dp(sizing.HousingInset / 2))

	d := min((size.Y-4*pad)/3, size.X-2*inset)
	if d <= 0 {
		return layout.Dimensions{Size: size}
	}

	housing := image.Pt(d+2*pad, 3*d+4*pad)
	origin := image.Pt((size.X-housing.X)/2, (size.Y-housing.Y)/2)

	rr := gtx.Dp(unit.Dp(16))
	body := clip.RRect{
		Rect: image.Rectangle{Min: origin, Max: origin.Add(housing)},
		NE:   rr, NW: rr, SE: rr, SW: rr,
	}
	paint.FillShape(gtx.Ops, cfg.HousingColor, body.Op(gtx.Ops))

	for i, c := range lampOrder {
		st := op.Offset(origin.Add(image.Pt(pad, pad+i*(d+pad)))).Push(gtx.Ops)
		lampGtx := gtx
		lampGtx.Constraints = layout.Exact(image.Pt(d, d))
		drawLamp(lampGtx, &lamps[i], lampColor(cfg, c), view.Lit == c)
		st.Pop()
	}

	return layout.Dimensions{Size: size}
}

func lampColor(cfg Config, c light.Color) color.NRGBA {
	switch c {
	case light.Green:
		return cfg.GreenColor
	case light.Yellow:
		return cfg.YellowColor
	default:
		return cfg.RedColor
	}
}

// dimmed возвращает цвет погашенной лампы.
func dimmed(col color.NRGBA) color.NRGBA {
	return color.NRGBA{R: col.R / 4, G: col.G / 4, B: col.B / 4, A: col.A}
}

// drawLamp рисует круглую кликабельную лампу по размеру ограничений.
func drawLamp(gtx layout.Context, btn *widget.Clickable, col color.NRGBA, on bool) layout.Dimensions {
	return btn.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		size := gtx.Constraints.Max
		if !on {
			col = dimmed(col)
		}
		circle := clip.Ellipse{Max: size}
		paint.FillShape(gtx.Ops, col, circle.Op(gtx.Ops))

		if on {
			// Блик
			hl := size.X / 4
			spot := clip.Ellipse{
				Min: image.Pt(hl, hl/2),
				Max: image.Pt(2*hl, 3*hl/2),
			}
			paint.FillShape(gtx.Ops, color.NRGBA{R: 255, G: 255, B: 255, A: 60}, spot.Op(gtx.Ops))
		}
		return layout.Dimensions{Size: size}
	})
}

// drawTimerPanel рисует обратный отсчёт и фазу таймера.
func drawTimerPanel(gtx layout.Context, th *material.Theme, cfg Config, view light.View) layout.Dimensions {
	size := gtx.Constraints.Max
	return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		rr := gtx.Dp(unit.Dp(8))
		rect := clip.RRect{
			Rect: image.Rectangle{Max: gtx.Constraints.Max},
			NE:   rr, NW: rr, SE: rr, SW: rr,
		}
		paint.FillShape(gtx.Ops, cfg.PanelColor, rect.Op(gtx.Ops))

		layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					lbl := material.Label(th, unit.Sp(36), view.Countdown())
					lbl.Color = cfg.TextColor
					lbl.Font.Weight = font.Bold
					return lbl.Layout(gtx)
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					lbl := material.Label(th, unit.Sp(12), phaseText(view))
					lbl.Color = phaseColor(cfg, view)
					return lbl.Layout(gtx)
				}),
			)
		})
		return layout.Dimensions{Size: size}
	})
}

func phaseText(view light.View) string {
	switch {
	case view.Paused:
		return i18n.T("phase_paused")
	case view.Phase == light.PhaseGreen:
		return i18n.T("phase_green")
	case view.Phase == light.PhaseRed:
		return i18n.T("phase_red")
	case view.Phase == light.PhaseWarning:
		return i18n.T("phase_warning")
	default:
		return i18n.T("phase_idle")
	}
}

func phaseColor(cfg Config, view light.View) color.NRGBA {
	switch {
	case view.Paused:
		return cfg.AccentColor
	case view.Phase == light.PhaseGreen:
		return cfg.GreenColor
	case view.Phase == light.PhaseRed:
		return cfg.RedColor
	case view.Phase == light.PhaseWarning:
		return cfg.YellowColor
	default:
		return cfg.TextDimColor
	}
}

// drawControlBar рисует кнопки старт, пауза и сброс.
func drawControlBar(gtx layout.Context, th *material.Theme, cfg Config, view light.View, ctl *controls) layout.Dimensions {
	pauseText := i18n.T("timer_pause")
	if view.Paused {
		pauseText = i18n.T("timer_resume")
	}

	return layout.Inset{Left: unit.Dp(8), Right: unit.Dp(8), Bottom: unit.Dp(6)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Spacing: layout.SpaceEvenly}.Layout(gtx,
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return drawActionButton(gtx, th, &ctl.start, cfg.GreenColor, i18n.T("timer_start"), !view.Active)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return drawActionButton(gtx, th, &ctl.pause, cfg.AccentColor, pauseText, view.Active)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return drawActionButton(gtx, th, &ctl.clear, cfg.PanelColor, i18n.T("timer_clear"), true)
			}),
		)
	})
}

// drawActionButton рисует кнопку действия с текстом.
func drawActionButton(gtx layout.Context, th *material.Theme, btn *widget.Clickable, bgColor color.NRGBA, text string, enabled bool) layout.Dimensions {
	if !enabled {
		bgColor.A = 90
	}
	return btn.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		// Эффект наведения
		currentBg := bgColor
		if enabled && btn.Hovered() {
			// Затемняем при наведении
			currentBg = color.NRGBA{
				R: uint8(float32(bgColor.R) * 0.85),
				G: uint8(float32(bgColor.G) * 0.85),
				B: uint8(float32(bgColor.B) * 0.85),
				A: bgColor.A,
			}
		}

		// Записываем содержимое для измерения
		macro := op.Record(gtx.Ops)
		dims := layout.Inset{
			Top: unit.Dp(6), Bottom: unit.Dp(6),
			Left: unit.Dp(8), Right: unit.Dp(8),
		}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				lbl := material.Label(th, unit.Sp(13), text)
				lbl.Color = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
				lbl.Font.Weight = font.Medium
				return lbl.Layout(gtx)
			})
		})
		call := macro.Stop()

		// Фон кнопки
		rr := gtx.Dp(unit.Dp(6))
		btnRect := clip.RRect{
			Rect: image.Rectangle{Max: image.Pt(gtx.Constraints.Max.X, dims.Size.Y)},
			NE:   rr, NW: rr, SE: rr, SW: rr,
		}
		paint.FillShape(gtx.Ops, currentBg, btnRect.Op(gtx.Ops))

		call.Add(gtx.Ops)
		return layout.Dimensions{Size: image.Pt(gtx.Constraints.Max.X, dims.Size.Y)}
	})
}

// drawMinimizeButton рисует кнопку свернуть.
func drawMinimizeButton(gtx layout.Context, btn *widget.Clickable, col color.NRGBA) layout.Dimensions {
	return btn.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		size := gtx.Dp(unit.Dp(20))
		if btn.Hovered() {
			col = color.NRGBA{R: 240, G: 240, B: 245, A: 255}
		}

		s := float32(size)
		margin := s * 0.25
		var path clip.Path
		path.Begin(gtx.Ops)
		path.MoveTo(f32.Pt(margin, s-margin))
		path.LineTo(f32.Pt(s-margin, s-margin))
		paint.FillShape(gtx.Ops, col, clip.Stroke{
			Path:  path.End(),
			Width: float32(gtx.Dp(unit.Dp(2))),
		}.Op())

		return layout.Dimensions{Size: image.Pt(size, size)}
	})
}

// drawCloseButton рисует кнопку-крестик.
func drawCloseButton(gtx layout.Context, btn *widget.Clickable, col color.NRGBA) layout.Dimensions {
	return btn.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		size := gtx.Dp(unit.Dp(20))

		// Эффект наведения
		if btn.Hovered() {
			col = color.NRGBA{R: 255, G: 100, B: 100, A: 255}
		}

		s := float32(size)
		margin := s * 0.25
		width := float32(gtx.Dp(unit.Dp(2)))
		for _, line := range [2][2]f32.Point{
			{f32.Pt(margin, margin), f32.Pt(s-margin, s-margin)},
			{f32.Pt(s-margin, margin), f32.Pt(margin, s-margin)},
		} {
			var path clip.Path
			path.Begin(gtx.Ops)
			path.MoveTo(line[0])
			path.LineTo(line[1])
			paint.FillShape(gtx.Ops, col, clip.Stroke{
				Path:  path.End(),
				Width: width,
			}.Op())
		}

		return layout.Dimensions{Size: image.Pt(size, size)}
	})
}
