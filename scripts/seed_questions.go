// 手动导入题库脚本
//
// 读取 YAML 题库文件写入数据库，已存在的分类 ID 和相同题干的题目会被跳过，可重复执行。
//
// 用法: go run scripts/seed_questions.go -file configs/seed_questions.yaml

package main

import (
	"flag"
	"log"
	"os"

	"trivia_api/internal/config"
	"trivia_api/pkg/database"
)

func main() {
	configDir := flag.String("config", "configs", "配置文件所在目录")
	file := flag.String("file", "configs/seed_questions.yaml", "题库文件")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("无法读取配置: %v", err)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatalf("无法打开题库文件: %v", err)
	}
	defer f.Close()

	result, err := database.SeedQuestions(db, f)
	if err != nil {
		log.Fatalf("导入失败: %v", err)
	}
	log.Printf("完成！新增分类 %d，新增题目 %d，跳过 %d", result.Categories, result.Questions, result.Skipped)
}
