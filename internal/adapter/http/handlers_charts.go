package adapthttp

import (
	"net/http"

	"weightlog/internal/domain"
)

func (s *Server) handleChartsPeriod(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	period, err := domain.ParsePeriod(stringQuery(r, "period", string(domain.PeriodWeek)))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	now, err := s.nowQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	items, err := s.charts.Period(r.Context(), period, now)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"period": period,
		"today":  domain.FormatDay(now),
		"items":  items,
	})
}

func (s *Server) handleChartsAverages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	mode, err := domain.ParseAverageMode(stringQuery(r, "mode", string(domain.ModeWeekly)))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	items, err := s.charts.Averages(r.Context(), mode)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"mode": mode, "items": items})
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	year, month, err := yearMonthQuery(r, s.now())
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	cells, err := s.charts.Calendar(r.Context(), year, month)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"year": year, "month": int(month), "cells": cells})
}

func (s *Server) handleCalendarPicker(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	today, err := s.nowQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	year, month, err := yearMonthQuery(r, today)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	cells, err := s.charts.Picker(r.Context(), year, month, today)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"year":  year,
		"month": int(month),
		"today": domain.FormatDay(today),
		"cells": cells,
	})
}
