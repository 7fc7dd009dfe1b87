package web

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/mawaqit-display/internal/controller"
	"github.com/llehouerou/mawaqit-display/internal/errmsg"
	"github.com/llehouerou/mawaqit-display/internal/mawaqit"
	"github.com/llehouerou/mawaqit-display/internal/prayer"
	"github.com/llehouerou/mawaqit-display/internal/settings"
)

type timeEntry struct {
	Name    string `json:"name"`
	Time    string `json:"time"`
	Alert   bool   `json:"alert"`
	Current bool   `json:"current"`
	Next    bool   `json:"next"`
}

func (s *Server) status(c *gin.Context) {
	snap := s.opts.Backend.Snapshot()
	resp := gin.H{
		"mode":     snap.Mode.String(),
		"loaded":   snap.Loaded,
		"mosque":   snap.Schedule.Label,
		"clock_ok": snap.ClockOK,
		"alert":    snap.Mode == controller.ModeAlert,
	}
	if snap.Mode == controller.ModeAlert {
		resp["alert_prayer"] = snap.AlertPrayer.String()
	}
	if snap.ClockOK {
		resp["time"] = snap.Now.String()
	}
	if snap.State.Available {
		resp["current"] = snap.State.Current.Index.String()
		resp["next"] = snap.State.Next.Index.String()
		resp["remaining"] = prayer.FormatCountdown(snap.State.Remaining)
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) times(c *gin.Context) {
	snap := s.opts.Backend.Snapshot()
	entries := make([]timeEntry, 0, prayer.Count)
	for i := range prayer.Count {
		idx := prayer.Index(i)
		e := timeEntry{
			Name:  idx.String(),
			Time:  snap.Schedule.Time(idx),
			Alert: snap.Settings.AlertEnabled(idx),
		}
		if snap.State.Available {
			e.Current = snap.State.Current.Index == idx
			e.Next = snap.State.Next.Index == idx
		}
		entries = append(entries, e)
	}
	c.JSON(http.StatusOK, gin.H{
		"mosque": snap.Schedule.Label,
		"valid":  snap.Schedule.Valid,
		"date":   snap.Schedule.Date,
		"hijri":  snap.Schedule.Hijri,
		"times":  entries,
	})
}

func (s *Server) settings(c *gin.Context) {
	c.JSON(http.StatusOK, s.opts.Backend.Snapshot().Settings.Entries())
}

func (s *Server) setAdhan(c *gin.Context) {
	idx, ok := settings.ParseAlertName(c.PostForm("prayer"))
	if !ok || idx == prayer.Sunrise {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown prayer"})
		return
	}
	on := parseBool(c.PostForm("enabled"))
	if err := s.opts.Backend.SetAlert(idx, on); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"prayer": idx.String(), "enabled": on})
}

func (s *Server) playAdhan(c *gin.Context) {
	started, err := s.opts.Backend.TestAlert()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"playing": started})
}

func (s *Server) stopAdhan(c *gin.Context) {
	stopped, err := s.opts.Backend.StopAlert()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stopped": stopped})
}

func (s *Server) rotate(c *gin.Context) {
	on, err := s.opts.Backend.ToggleRotation()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rotation": on})
}

func (s *Server) searchMosque(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if utf8.RuneCountInString(q) < minSearchLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query too short"})
		return
	}
	if s.opts.Searcher == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "search unavailable"})
		return
	}
	results, err := s.opts.Searcher.Search(c.Request.Context(), q)
	if err != nil {
		log.Warn().Err(err).Str("query", q).Msg(errmsg.Format(errmsg.OpMosqueSearch, err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, results)
}

type mosqueRequest struct {
	ID   string `form:"id" json:"id"`
	Name string `form:"name" json:"name" binding:"required"`
}

func (s *Server) selectMosque(c *gin.Context) {
	var req mosqueRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sel := mawaqit.Selection{ID: strings.TrimSpace(req.ID), Name: strings.TrimSpace(req.Name)}
	if err := s.opts.Backend.SelectMosque(sel); err != nil {
		log.Warn().Err(err).Msg(errmsg.Format(errmsg.OpMosqueSelect, err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": sel.ID, "name": sel.Name})
}

func (s *Server) adhanFile(c *gin.Context) {
	if s.opts.AdhanPath == "" {
		c.Status(http.StatusNotFound)
		return
	}
	if _, err := os.Stat(s.opts.AdhanPath); err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.File(s.opts.AdhanPath)
}

var errNotMP3 = errors.New("not an mp3 file")

func (s *Server) upload(c *gin.Context) {
	if s.opts.AdhanPath == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no adhan path configured"})
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !strings.EqualFold(filepath.Ext(fh.Filename), ".mp3") {
		c.JSON(http.StatusBadRequest, gin.H{"error": errNotMP3.Error()})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	if err := saveMP3(f, s.opts.AdhanPath); err != nil {
		log.Warn().Err(err).Msg(errmsg.Format(errmsg.OpAdhanUpload, err))
		status := http.StatusInternalServerError
		if errors.Is(err, errNotMP3) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	log.Info().Int64("size", fh.Size).Msg("adhan uploaded")
	c.JSON(http.StatusOK, gin.H{"size": fh.Size})
}

// saveMP3 checks the header and replaces dst atomically.
func saveMP3(r io.Reader, dst string) error {
	head := make([]byte, 3)
	if _, err := io.ReadFull(r, head); err != nil {
		return errNotMP3
	}
	if !isMP3Header(head) {
		return errNotMP3
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(dst), ".adhan-*.mp3")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := io.Copy(tmp, io.MultiReader(bytes.NewReader(head), r)); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dst)
}

// isMP3Header accepts an ID3v2 tag or an MPEG frame sync.
func isMP3Header(b []byte) bool {
	if len(b) < 3 {
		return false
	}
	if string(b[:3]) == "ID3" {
		return true
	}
	return b[0] == 0xFF && b[1]&0xE0 == 0xE0
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "yes":
		return true
	}
	v, err := strconv.ParseBool(s)
	return err == nil && v
}
