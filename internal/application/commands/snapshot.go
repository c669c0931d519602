package commands

import (
	"path/filepath"

	"github.com/sirupsen/logrus"

	"mosreport/internal/application"
	"mosreport/internal/domain"
	"mosreport/internal/logger"
	"mosreport/internal/ports"
)

// CategoryResult records which snapshot fed a category and what came out of it
type CategoryResult struct {
	Category domain.Category
	File     string // Empty when the category holds no snapshot
	Value    string
}

// loadSnapshot decodes the latest snapshot of a category into v.
// Returns false, with v untouched, when the category is empty.
func loadSnapshot(repo ports.ResearchRepository, entity domain.Entity, category domain.Category, v any) (string, bool, error) {
	path, found, err := repo.LatestSnapshot(entity, category)
	if err != nil {
		return "", false, err
	}
	if !found {
		logger.Log.WithFields(logrus.Fields{
			"entity":   entity.Name,
			"category": category.String(),
		}).Debug("no snapshot, using defaults")
		return "", false, nil
	}

	file := filepath.Base(path)
	data, err := repo.ReadSnapshot(path)
	if err != nil {
		return "", false, err
	}

	if err := domain.DecodeSnapshot(data, v); err != nil {
		return "", false, &application.SnapshotError{
			Entity:   entity.Name,
			Category: category.String(),
			File:     file,
			Err:      err,
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"entity":   entity.Name,
		"category": category.String(),
	}).Debugf("using snapshot %s", file)
	return file, true, nil
}

// extractValues selects and extracts all five categories of one entity.
// Each category defaults independently.
func extractValues(repo ports.ResearchRepository, entity domain.Entity) (domain.Values, []CategoryResult, error) {
	var (
		values  domain.Values
		results []CategoryResult
	)

	var data domain.DataSnapshot
	file, found, err := loadSnapshot(repo, entity, domain.CategoryData, &data)
	if err != nil {
		return values, nil, err
	}
	if found {
		values.Price = domain.ExtractPrice(&data)
	}
	results = append(results, CategoryResult{domain.CategoryData, file, domain.FormatNumber(values.Price)})

	var screen domain.ScreenSnapshot
	file, found, err = loadSnapshot(repo, entity, domain.CategoryScreen, &screen)
	if err != nil {
		return values, nil, err
	}
	if found {
		rating, ok := domain.ExtractRating(&screen)
		if !ok {
			logger.Log.WithFields(logrus.Fields{
				"entity": entity.Name,
				"file":   file,
			}).Warn("screen snapshot has no rating, counting it as 0")
		}
		values.Screen = rating
	}
	results = append(results, CategoryResult{domain.CategoryScreen, file, domain.FormatNumber(values.Screen)})

	var management domain.ScoreSnapshot
	file, found, err = loadSnapshot(repo, entity, domain.CategoryManagement, &management)
	if err != nil {
		return values, nil, err
	}
	if found {
		values.Management = domain.ExtractScore(&management)
	}
	results = append(results, CategoryResult{domain.CategoryManagement, file, domain.FormatNumber(values.Management)})

	var moat domain.ScoreSnapshot
	file, found, err = loadSnapshot(repo, entity, domain.CategoryMoat, &moat)
	if err != nil {
		return values, nil, err
	}
	if found {
		values.Moat = domain.ExtractScore(&moat)
	}
	results = append(results, CategoryResult{domain.CategoryMoat, file, domain.FormatNumber(values.Moat)})

	var mos domain.MosSnapshot
	file, found, err = loadSnapshot(repo, entity, domain.CategoryMOS, &mos)
	if err != nil {
		return values, nil, err
	}
	if found {
		values.DCFBuyPrice, values.BuffettBuyPrice = domain.ExtractBuyPrices(&mos)
	} else {
		values.DCFBuyPrice, values.BuffettBuyPrice = domain.ExtractBuyPrices(nil)
	}
	results = append(results, CategoryResult{
		Category: domain.CategoryMOS,
		File:     file,
		Value:    values.DCFBuyPrice + " / " + values.BuffettBuyPrice,
	})

	return values, results, nil
}
