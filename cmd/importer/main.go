package main

import (
	"encoding/csv"
	"flag"
	"io"
	"log"
	"os"
	"strings"

	"github.com/omarashraf/quiz_platform/database"
	"github.com/omarashraf/quiz_platform/engine"
	"github.com/omarashraf/quiz_platform/models"
)

// Expected CSV columns:
// subject_code,level,question_text,option_a,option_b,option_c,option_d,correct_answer,explanation
// where correct_answer is one of a, b, c, d.
const expectedColumns = 9

func main() {
	path := flag.String("file", "", "path to the CSV file to import")
	dryRun := flag.Bool("dry-run", false, "validate the file without writing to the database")
	flag.Parse()

	if *path == "" {
		log.Fatal("🔥 -file is required")
	}

	f, err := os.Open(*path)
	if err != nil {
		log.Fatalf("🔥 Failed to open %s: %v", *path, err)
	}
	defer f.Close()

	database.ConnectDB()
	database.Migrate()
	bank := engine.NewGormBank(database.DB)

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = expectedColumns

	// Header row is optional; skip it when the first cell looks like one.
	first, err := reader.Read()
	if err != nil {
		log.Fatalf("🔥 Failed to read %s: %v", *path, err)
	}
	imported, skipped, line := 0, 0, 1
	if !strings.EqualFold(first[0], "subject_code") {
		if importRow(bank, first, line, *dryRun) {
			imported++
		} else {
			skipped++
		}
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			log.Printf("⚠️ Line %d: %v, skipping.", line, err)
			skipped++
			continue
		}
		if importRow(bank, row, line, *dryRun) {
			imported++
		} else {
			skipped++
		}
	}

	log.Printf("✅ Import finished: %d imported, %d skipped.", imported, skipped)
}

func importRow(bank *engine.GormBank, row []string, line int, dryRun bool) bool {
	code := strings.ToUpper(strings.TrimSpace(row[0]))
	subject, err := bank.GetSubject(code)
	if err != nil {
		log.Printf("⚠️ Line %d: unknown subject %q, skipping.", line, code)
		return false
	}

	level := strings.ToLower(strings.TrimSpace(row[1]))
	correct := strings.ToLower(strings.TrimSpace(row[7]))
	options := []string{row[3], row[4], row[5], row[6]}
	letters := []string{"a", "b", "c", "d"}

	question := &models.Question{
		SubjectID:    subject.ID,
		QuestionText: strings.TrimSpace(row[2]),
		Level:        level,
		Explanation:  strings.TrimSpace(row[8]),
	}
	for i, opt := range options {
		opt = strings.TrimSpace(opt)
		if opt == "" {
			continue
		}
		question.Answers = append(question.Answers, &models.Answer{
			AnswerText: opt,
			IsCorrect:  letters[i] == correct,
			Position:   i,
		})
	}

	if err := engine.ValidateQuestion(question); err != nil {
		log.Printf("⚠️ Line %d: %v, skipping.", line, err)
		return false
	}
	if dryRun {
		return true
	}
	if err := bank.CreateQuestion(question); err != nil {
		log.Printf("⚠️ Line %d: failed to save question: %v, skipping.", line, err)
		return false
	}
	return true
}
