package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"time"

	"github.com/spf13/afero"
	"github.com/svera/nanoperiod/internal/batch"
	"github.com/svera/nanoperiod/internal/calendar"
	"github.com/svera/nanoperiod/internal/period"
	"github.com/svera/nanoperiod/internal/sequence"
	"github.com/svera/nanoperiod/internal/tz"
	"github.com/svera/nanoperiod/internal/webserver/jwtclaimsreader"
)

func (s *ServeCmd) Run(input *CLIInput) error {
	cfg, err := loadConfig(input.Config)
	if err != nil {
		return err
	}
	return run(cfg)
}

func (p *ParseCmd) Run(out io.Writer, appFs afero.Fs) error {
	texts := p.Periods
	if p.File != "" {
		lines, err := batch.ReadLines(appFs, p.File)
		if err != nil {
			return err
		}
		texts = append(texts, lines...)
	}

	periods, err := batch.ParseAll(texts)
	if err != nil {
		return err
	}

	lines := batch.FormatAll(periods)
	if p.ISO {
		for i, n := range periods {
			if n.Valid {
				lines[i] = n.Period.ISO()
			}
		}
	}
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
	return nil
}

func (a *AddCmd) Run(out io.Writer) error {
	t, err := time.Parse(time.RFC3339Nano, a.Instant)
	if err != nil {
		return err
	}
	p, err := period.ParseNull(a.Period)
	if err != nil {
		return err
	}

	zones := tz.NewDatabase()
	loc, err := zones.Location(a.Zone)
	if err != nil {
		return err
	}

	mapper := batch.NewMapper(calendar.New(zones), 1)
	apply := mapper.AddToInstants
	if a.Subtract {
		apply = mapper.SubtractFromInstants
	}
	res, err := apply(context.Background(), []sql.NullTime{{Time: t, Valid: true}}, []period.Null{p}, []string{a.Zone})
	if err != nil {
		return err
	}

	if !res[0].Valid {
		fmt.Fprintln(out, period.NATag)
		return nil
	}
	fmt.Fprintln(out, res[0].Time.In(loc).Format(time.RFC3339Nano))
	return nil
}

func (s *SeqCmd) Run(input *CLIInput, out io.Writer) error {
	cfg, err := loadConfig(input.Config)
	if err != nil {
		return err
	}
	from, err := time.Parse(time.RFC3339Nano, s.From)
	if err != nil {
		return err
	}
	by, err := period.Parse(s.By)
	if err != nil {
		return err
	}

	zones := tz.NewDatabase()
	loc, err := zones.Location(s.Zone)
	if err != nil {
		return err
	}

	generator := sequence.NewGenerator(calendar.New(zones), cfg.MaxSequenceLength)
	var instants []time.Time
	if s.To != "" {
		to, err := time.Parse(time.RFC3339Nano, s.To)
		if err != nil {
			return err
		}
		instants, err = generator.Bounded(from, to, by, s.Zone)
		if err != nil {
			return err
		}
	} else {
		instants, err = generator.Counted(from, by, s.Length, s.Zone)
		if err != nil {
			return err
		}
	}

	for _, t := range instants {
		fmt.Fprintln(out, t.In(loc).Format(time.RFC3339Nano))
	}
	return nil
}

func (t *TokenCmd) Run(input *CLIInput, out io.Writer) error {
	cfg, err := loadConfig(input.Config)
	if err != nil {
		return err
	}
	if cfg.JwtSecret == "" {
		return fmt.Errorf("no JWT secret configured, writes are not protected")
	}

	token, err := jwtclaimsreader.GenerateToken(t.Subject, time.Now().Add(time.Duration(t.Expiration)*time.Hour), []byte(cfg.JwtSecret))
	if err != nil {
		return err
	}
	fmt.Fprintln(out, token)
	return nil
}
