package main

import (
	"errors"
	"flag"
	"log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Standalone migration runner for file-backed databases. The API applies
// migrations in-process at startup, which is the only option for the
// in-memory default; this exists for inspecting or preparing a portal.db
// file without starting the server.
func main() {
	dbPath := flag.String("db", "portal.db", "path to the database file")
	source := flag.String("source", "file://migrations", "migrations source URL")
	flag.Parse()

	m, err := migrate.New(*source, "sqlite3://"+*dbPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatal(err)
	}
	log.Println("Database migration complete for:", *dbPath)
}

/*
This project is the backend API for the KEC campus portal. Weekly hostel mess menus and role-targeted notifications for KEC students, plus the endpoints backing the portal admin panel.
Portal API Copyright (C) 2025 KEC Campus Portal Team
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
