package utils

import (
	"fmt"
	"math/rand"

	"github.com/fuyo-dev/shift-scheduler/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var commonSurnames = []string{
	"佐藤", "鈴木", "高橋", "田中", "伊藤", "渡辺", "山本", "中村", "小林", "加藤",
	"吉田", "山田", "佐々木", "山口", "松本", "井上", "木村", "林", "斎藤", "清水",
}
var commonGivenNames = []string{
	"翔太", "大輝", "健太", "拓海", "翼", "優斗", "蓮", "悠真", "陽菜", "美咲",
	"葵", "さくら", "結衣", "凛", "優奈", "七海", "愛", "真央", "遥", "彩花",
}

func GenerateRandomJapaneseName() string {
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	givenName := commonGivenNames[rand.Intn(len(commonGivenNames))]
	return surname + " " + givenName
}

var employeeTypes = []domain.EmployeeType{
	domain.EmployeeTypeRegular,
	domain.EmployeeTypeDispatched,
}

func GenerateRandomEmployeeType() domain.EmployeeType {
	return employeeTypes[rand.Intn(len(employeeTypes))]
}

func GenerateRandomEmployee() (*domain.Employee, error) {
	fullName, err := domain.NewEmployeeFullName(GenerateRandomJapaneseName())
	if err != nil {
		return nil, err
	}
	return domain.NewEmployee(fullName, GenerateRandomEmployeeType()), nil
}

var digits = "0123456789"
var lowercaseLetters = "abcdefghijklmnopqrstuvwxyz"

func GenerateRandomUsername() string {
	letterLength := rand.Intn(4) + 5
	username := ""

	for i := 0; i < letterLength; i++ {
		username += string(lowercaseLetters[rand.Intn(len(lowercaseLetters))])
	}

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}

func GenerateRandomManager(password string, emailDomainName string) (*domain.Manager, error) {
	fullName := GenerateRandomJapaneseName()
	username := GenerateRandomUsername()
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	manager := &domain.Manager{
		Username:     username,
		PasswordHash: string(passwordHash),
		FullName:     fullName,
		Email:        username + "@" + emailDomainName,
	}

	return manager, nil
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	random_password := make([]rune, length)
	for i := range random_password {
		random_password[i] = letters[rand.Intn(len(letters))]
	}
	return string(random_password)
}
