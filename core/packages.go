package core

// popularPackages is the built-in reference list of heavily downloaded npm
// packages, the primary squatting targets. Extend per project with the
// typosquat.extra-names config key.
var popularPackages = []string{
	// Frameworks and view layers
	"react",
	"react-dom",
	"react-router",
	"react-router-dom",
	"react-redux",
	"react-scripts",
	"react-native",
	"redux",
	"redux-thunk",
	"redux-saga",
	"redux-persist",
	"reselect",
	"vue",
	"vue-router",
	"vuex",
	"pinia",
	"angular",
	"svelte",
	"solid-js",
	"preact",
	"lit",
	"lit-element",
	"lit-html",
	"alpinejs",
	"htmx.org",
	"backbone",
	"ember-source",
	"express",
	"koa",
	"fastify",
	"hapi",
	"restify",
	"polka",
	"micro",
	"next",
	"nuxt",
	"gatsby",
	"remix",
	"astro",
	"@remix-run/router",
	"@reduxjs/toolkit",
	"@tanstack/react-query",
	"@tanstack/react-table",
	"@tanstack/react-virtual",
	"@sveltejs/kit",
	"@sveltejs/vite-plugin-svelte",
	"svelte-preprocess",
	"@angular/core",
	"@angular/common",
	"@angular/compiler",
	"@angular/forms",
	"@angular/router",
	"@angular/animations",
	"@angular/platform-browser",
	"@angular/platform-browser-dynamic",
	"@angular/cli",
	"@angular/material",
	"@angular/cdk",
	"@angular-devkit/build-angular",
	"@angular-devkit/core",
	"@angular-devkit/schematics",
	"@vue/cli",
	"@vue/cli-service",
	"@vue/compiler-sfc",
	"@vue/compiler-dom",
	"@vue/compiler-core",
	"@vue/runtime-core",
	"@vue/runtime-dom",
	"@vue/reactivity",
	"@vue/shared",
	"@vue/test-utils",
	"@nestjs/common",
	"@nestjs/core",
	"@nestjs/platform-express",
	"@nestjs/config",
	"@nestjs/swagger",
	"@nestjs/testing",
	"@nestjs/jwt",
	"@nestjs/passport",
	"@nestjs/typeorm",
	"@nestjs/mongoose",
	"@feathersjs/feathers",

	// React ecosystem
	"react-query",
	"react-hook-form",
	"react-select",
	"react-table",
	"react-spring",
	"react-transition-group",
	"react-helmet",
	"react-icons",
	"react-markdown",
	"react-dropzone",
	"react-datepicker",
	"react-modal",
	"react-toastify",
	"react-tooltip",
	"react-window",
	"react-virtualized",
	"react-beautiful-dnd",
	"react-dnd",
	"react-draggable",
	"react-intl",
	"react-i18next",
	"react-error-boundary",
	"react-is",
	"react-refresh",
	"react-colorful",
	"react-day-picker",
	"react-slick",
	"react-player",
	"react-use",
	"use-debounce",
	"formik",
	"swr",
	"recoil",
	"zustand",
	"jotai",
	"valtio",
	"mobx",
	"mobx-react",
	"mobx-react-lite",
	"xstate",
	"history",
	"scheduler",
	"prop-types",
	"classnames",
	"clsx",
	"hoist-non-react-statics",
	"react-native-gesture-handler",
	"react-native-reanimated",
	"react-native-screens",
	"react-native-safe-area-context",
	"react-native-svg",
	"@react-navigation/native",
	"@react-navigation/stack",
	"expo",
	"metro",

	// HTTP clients
	"axios",
	"axios-retry",
	"node-fetch",
	"got",
	"superagent",
	"request",
	"request-promise",
	"request-promise-native",
	"undici",
	"ky",
	"ofetch",
	"cross-fetch",
	"whatwg-fetch",
	"isomorphic-fetch",
	"isomorphic-unfetch",
	"unfetch",
	"needle",
	"bent",
	"phin",
	"follow-redirects",
	"agent-base",
	"https-proxy-agent",
	"http-proxy-agent",
	"socks-proxy-agent",
	"proxy-agent",
	"proxy-from-env",
	"nock",
	"msw",
	"fetch-mock",

	// Terminal and CLI
	"chalk",
	"colors",
	"kleur",
	"picocolors",
	"colorette",
	"ansi-colors",
	"cli-color",
	"commander",
	"yargs",
	"yargs-parser",
	"minimist",
	"arg",
	"cac",
	"sade",
	"meow",
	"@oclif/core",
	"inquirer",
	"prompts",
	"enquirer",
	"ora",
	"listr",
	"listr2",
	"debug",
	"winston",
	"winston-daily-rotate-file",
	"pino",
	"pino-pretty",
	"morgan",
	"bunyan",
	"npmlog",
	"loglevel",
	"log4js",
	"signale",
	"consola",
	"electron-log",
	"string-width",
	"strip-ansi",
	"ansi-regex",
	"ansi-styles",
	"ansi-escapes",
	"wrap-ansi",
	"cli-table3",
	"table",
	"boxen",
	"figlet",
	"figures",
	"progress",
	"cli-progress",
	"cli-spinners",
	"cli-cursor",
	"log-symbols",
	"terminal-link",
	"supports-color",
	"supports-hyperlinks",
	"has-flag",
	"is-unicode-supported",
	"is-interactive",
	"restore-cursor",
	"onetime",
	"mimic-fn",
	"wcwidth",
	"widest-line",
	"window-size",

	// Dates, numbers, ids
	"moment",
	"moment-timezone",
	"dayjs",
	"date-fns",
	"date-fns-tz",
	"luxon",
	"ms",
	"pretty-ms",
	"humanize-duration",
	"cron-parser",
	"uuid",
	"nanoid",
	"shortid",
	"cuid",
	"ulid",
	"hyperid",
	"pretty-bytes",
	"filesize",
	"numeral",
	"currency.js",
	"big.js",
	"bignumber.js",
	"decimal.js",
	"mathjs",
	"fraction.js",

	// TypeScript and Babel
	"typescript",
	"ts-node",
	"ts-node-dev",
	"tsx",
	"tslib",
	"tsup",
	"tsconfig-paths",
	"type-fest",
	"utility-types",
	"babel-core",
	"babel-loader",
	"babel-jest",
	"babel-plugin-macros",
	"babel-plugin-istanbul",
	"babel-preset-react-app",
	"@babel/core",
	"@babel/cli",
	"@babel/runtime",
	"@babel/runtime-corejs3",
	"@babel/preset-env",
	"@babel/preset-react",
	"@babel/preset-typescript",
	"@babel/plugin-transform-runtime",
	"@babel/plugin-proposal-class-properties",
	"@babel/plugin-syntax-jsx",
	"@babel/parser",
	"@babel/traverse",
	"@babel/types",
	"@babel/generator",
	"@babel/template",
	"@babel/code-frame",
	"@babel/highlight",
	"@babel/helper-plugin-utils",
	"@babel/helper-module-imports",
	"@babel/eslint-parser",
	"@babel/register",
	"@swc/core",
	"@swc/helpers",
	"@swc/jest",
	"swc-loader",

	// Type definitions
	"@types/node",
	"@types/react",
	"@types/react-dom",
	"@types/jest",
	"@types/mocha",
	"@types/express",
	"@types/express-serve-static-core",
	"@types/lodash",
	"@types/jquery",
	"@types/uuid",
	"@types/cors",
	"@types/debug",
	"@types/fs-extra",
	"@types/glob",
	"@types/js-yaml",
	"@types/minimist",
	"@types/semver",
	"@types/ws",
	"@types/yargs",
	"@types/chai",
	"@types/sinon",
	"@types/supertest",
	"@types/qs",
	"@types/mime",
	"@types/range-parser",
	"@types/serve-static",
	"@types/body-parser",
	"@types/connect",
	"@types/http-errors",
	"@types/send",
	"@types/json-schema",
	"@types/istanbul-lib-coverage",
	"@types/prop-types",
	"@types/babel__core",
	"@types/node-fetch",
	"@types/jsonwebtoken",
	"@types/bcrypt",
	"@types/multer",
	"@types/compression",
	"@types/cookie-parser",

	// Bundlers and build tools
	"webpack",
	"webpack-cli",
	"webpack-dev-server",
	"webpack-dev-middleware",
	"webpack-hot-middleware",
	"webpack-merge",
	"webpack-bundle-analyzer",
	"webpack-sources",
	"webpack-node-externals",
	"html-webpack-plugin",
	"copy-webpack-plugin",
	"clean-webpack-plugin",
	"mini-css-extract-plugin",
	"terser-webpack-plugin",
	"fork-ts-checker-webpack-plugin",
	"case-sensitive-paths-webpack-plugin",
	"css-loader",
	"style-loader",
	"sass-loader",
	"less-loader",
	"postcss-loader",
	"file-loader",
	"url-loader",
	"raw-loader",
	"ts-loader",
	"source-map-loader",
	"thread-loader",
	"vue-loader",
	"rollup",
	"rollup-plugin-terser",
	"rollup-plugin-visualizer",
	"rollup-plugin-dts",
	"rollup-plugin-postcss",
	"@rollup/plugin-node-resolve",
	"@rollup/plugin-commonjs",
	"@rollup/plugin-babel",
	"@rollup/plugin-json",
	"@rollup/plugin-typescript",
	"@rollup/plugin-terser",
	"@rollup/plugin-replace",
	"@rollup/plugin-alias",
	"@rollup/pluginutils",
	"vite",
	"@vitejs/plugin-vue",
	"@vitejs/plugin-react",
	"@vitejs/plugin-legacy",
	"vite-plugin-pwa",
	"vite-tsconfig-paths",
	"esbuild",
	"esbuild-loader",
	"parcel",
	"browserify",
	"gulp",
	"gulp-util",
	"gulp-sass",
	"gulp-rename",
	"gulp-concat",
	"gulp-uglify",
	"grunt",
	"grunt-contrib-watch",
	"grunt-contrib-uglify",
	"turbo",
	"nx",
	"lerna",
	"@changesets/cli",
	"terser",
	"uglify-js",
	"cssnano",
	"clean-css",
	"html-minifier",
	"html-minifier-terser",
	"svgo",
	"imagemin",
	"browserslist",
	"caniuse-lite",
	"electron-to-chromium",
	"update-browserslist-db",
	"core-js",
	"core-js-pure",
	"regenerator-runtime",
	"regenerate",

	// Parsers and AST tooling
	"acorn",
	"acorn-jsx",
	"acorn-walk",
	"espree",
	"esprima",
	"estraverse",
	"esutils",
	"esquery",
	"esrecurse",
	"escodegen",
	"recast",
	"jscodeshift",
	"magic-string",
	"source-map",
	"source-map-support",
	"source-map-js",
	"@jridgewell/trace-mapping",
	"@jridgewell/gen-mapping",
	"@jridgewell/resolve-uri",
	"@jridgewell/set-array",
	"@jridgewell/sourcemap-codec",

	// Linters and formatters
	"eslint",
	"eslint-config-airbnb",
	"eslint-config-airbnb-base",
	"eslint-config-prettier",
	"eslint-config-standard",
	"eslint-plugin-react",
	"eslint-plugin-react-hooks",
	"eslint-plugin-import",
	"eslint-plugin-jsx-a11y",
	"eslint-plugin-prettier",
	"eslint-plugin-vue",
	"eslint-plugin-jest",
	"eslint-plugin-node",
	"eslint-plugin-promise",
	"eslint-plugin-unicorn",
	"eslint-scope",
	"eslint-utils",
	"eslint-visitor-keys",
	"@eslint/js",
	"@typescript-eslint/parser",
	"@typescript-eslint/eslint-plugin",
	"@typescript-eslint/typescript-estree",
	"@typescript-eslint/utils",
	"@typescript-eslint/scope-manager",
	"@typescript-eslint/visitor-keys",
	"prettier",
	"prettier-plugin-tailwindcss",
	"pretty-quick",
	"stylelint",
	"stylelint-config-standard",
	"jshint",
	"standard",
	"xo",
	"editorconfig",
	"@commitlint/cli",
	"@commitlint/config-conventional",
	"commitizen",
	"cz-conventional-changelog",
	"semantic-release",
	"standard-version",
	"release-it",
	"conventional-changelog",
	"conventional-commits-parser",

	// Test tooling
	"jest",
	"jest-cli",
	"jest-config",
	"jest-circus",
	"jest-diff",
	"jest-each",
	"jest-environment-jsdom",
	"jest-environment-node",
	"jest-get-type",
	"jest-matcher-utils",
	"jest-message-util",
	"jest-mock",
	"jest-regex-util",
	"jest-resolve",
	"jest-runner",
	"jest-runtime",
	"jest-snapshot",
	"jest-util",
	"jest-validate",
	"jest-watcher",
	"jest-worker",
	"ts-jest",
	"expect",
	"pretty-format",
	"mocha",
	"chai",
	"chai-as-promised",
	"sinon",
	"sinon-chai",
	"jasmine",
	"jasmine-core",
	"karma",
	"karma-chrome-launcher",
	"karma-jasmine",
	"cypress",
	"playwright",
	"playwright-core",
	"puppeteer",
	"puppeteer-core",
	"vitest",
	"@vitest/ui",
	"ava",
	"tape",
	"uvu",
	"supertest",
	"nyc",
	"istanbul",
	"istanbul-lib-coverage",
	"istanbul-lib-instrument",
	"istanbul-lib-report",
	"istanbul-reports",
	"c8",
	"coveralls",
	"codecov",
	"@testing-library/react",
	"@testing-library/jest-dom",
	"@testing-library/user-event",
	"@testing-library/dom",
	"@testing-library/vue",
	"@testing-library/react-hooks",
	"jsdom",
	"happy-dom",
	"faker",
	"@faker-js/faker",
	"chance",
	"testdouble",
	"proxyquire",
	"mock-fs",
	"memfs",

	// Filesystem and globbing
	"rimraf",
	"mkdirp",
	"del",
	"glob",
	"fast-glob",
	"globby",
	"glob-parent",
	"is-glob",
	"is-extglob",
	"fs-extra",
	"graceful-fs",
	"chokidar",
	"watchpack",
	"micromatch",
	"minimatch",
	"braces",
	"fill-range",
	"to-regex-range",
	"is-number",
	"picomatch",
	"anymatch",
	"binary-extensions",
	"is-binary-path",
	"normalize-path",
	"path-type",
	"dir-glob",
	"slash",
	"upath",
	"ncp",
	"cpx",
	"tmp",
	"temp",
	"tempy",
	"make-dir",
	"write-file-atomic",
	"load-json-file",
	"walkdir",
	"klaw",
	"readdirp",
	"recursive-readdir",
	"find-up",
	"locate-path",
	"pkg-dir",
	"read-pkg",
	"read-pkg-up",
	"pkg-up",
	"proper-lockfile",
	"lockfile",
	"cacache",
	"ssri",
	"find-cache-dir",

	// Language utilities
	"lodash",
	"lodash-es",
	"lodash.merge",
	"lodash.debounce",
	"lodash.throttle",
	"lodash.clonedeep",
	"lodash.get",
	"lodash.set",
	"lodash.isequal",
	"lodash.uniq",
	"lodash.pick",
	"lodash.omit",
	"lodash.camelcase",
	"lodash.kebabcase",
	"underscore",
	"ramda",
	"immutable",
	"immer",
	"rxjs",
	"async",
	"bluebird",
	"q",
	"neo-async",
	"p-limit",
	"p-queue",
	"p-retry",
	"p-map",
	"p-all",
	"p-timeout",
	"p-locate",
	"p-try",
	"yocto-queue",
	"retry",
	"async-retry",
	"backoff",
	"semver",
	"compare-versions",
	"deepmerge",
	"object-assign",
	"extend",
	"merge",
	"merge-deep",
	"mixin-deep",
	"defaults",
	"clone",
	"clone-deep",
	"shallow-clone",
	"fast-deep-equal",
	"deep-equal",
	"dequal",
	"shallowequal",
	"object-hash",
	"hash-sum",
	"memoizee",
	"memoize-one",
	"quick-lru",
	"flat",
	"dot-prop",
	"camelcase",
	"camelcase-keys",
	"decamelize",
	"pascal-case",
	"param-case",
	"no-case",
	"change-case",
	"slugify",
	"pluralize",
	"inflection",
	"escape-string-regexp",
	"emoji-regex",
	"is-fullwidth-code-point",
	"string-similarity",
	"fuzzysort",
	"fuse.js",
	"match-sorter",
	"natural",
	"leven",
	"fastest-levenshtein",
	"string-hash",
	"he",
	"entities",
	"html-entities",
	"json5",
	"jsonc-parser",
	"strip-json-comments",
	"strip-bom",
	"parse-json",
	"json-parse-even-better-errors",
	"error-ex",
	"is-arrayish",
	"json-stringify-safe",
	"fast-json-stable-stringify",
	"fast-safe-stringify",
	"flatted",
	"serialize-javascript",
	"devalue",

	// Node internals and shims
	"buffer",
	"safe-buffer",
	"string_decoder",
	"readable-stream",
	"stream-browserify",
	"through2",
	"concat-stream",
	"duplexify",
	"pumpify",
	"pump",
	"end-of-stream",
	"once",
	"wrappy",
	"inflight",
	"inherits",
	"util-deprecate",
	"events",
	"eventemitter3",
	"mitt",
	"tiny-emitter",
	"emittery",
	"process",
	"path-browserify",
	"punycode",
	"util",
	"assert",
	"setimmediate",
	"immediate",
	"https-browserify",
	"stream-http",
	"crypto-browserify",
	"randombytes",
	"object-keys",
	"object.assign",
	"define-properties",
	"has",
	"hasown",
	"has-symbols",
	"function-bind",
	"call-bind",
	"get-intrinsic",
	"side-channel",
	"es-abstract",
	"es-define-property",
	"es-errors",
	"gopd",
	"is-callable",
	"is-regex",
	"is-arguments",
	"is-generator-function",
	"is-typed-array",
	"which-typed-array",
	"available-typed-arrays",
	"bindings",
	"nan",
	"node-addon-api",
	"node-gyp",
	"@mapbox/node-pre-gyp",
	"prebuild-install",
	"detect-libc",

	// Express middleware and HTTP plumbing
	"body-parser",
	"cookie-parser",
	"cookie",
	"cookie-signature",
	"cors",
	"helmet",
	"compression",
	"multer",
	"formidable",
	"busboy",
	"express-session",
	"express-validator",
	"express-rate-limit",
	"express-async-errors",
	"http-errors",
	"http-proxy",
	"http-proxy-middleware",
	"serve-static",
	"serve-favicon",
	"serve-index",
	"connect",
	"connect-history-api-fallback",
	"finalhandler",
	"on-finished",
	"on-headers",
	"raw-body",
	"fresh",
	"etag",
	"vary",
	"accepts",
	"negotiator",
	"proxy-addr",
	"forwarded",
	"methods",
	"parseurl",
	"range-parser",
	"send",
	"destroy",
	"encodeurl",
	"escape-html",
	"statuses",
	"type-is",
	"media-typer",
	"depd",
	"ee-first",
	"merge-descriptors",
	"path-to-regexp",
	"router",
	"qs",
	"query-string",
	"url-parse",
	"form-data",
	"formdata-polyfill",
	"mime",
	"mime-types",
	"mime-db",
	"content-type",
	"content-disposition",
	"iconv-lite",
	"ip",
	"ipaddr.js",
	"is-docker",
	"is-wsl",
	"is-ci",
	"ci-info",
	"detect-port",
	"get-port",
	"portfinder",
	"http-server",
	"serve",
	"live-server",
	"browser-sync",
	"json-server",
	"sirv",

	// Auth and crypto
	"passport",
	"passport-local",
	"passport-jwt",
	"passport-google-oauth20",
	"passport-github2",
	"jsonwebtoken",
	"jwt-decode",
	"jwks-rsa",
	"jose",
	"openid-client",
	"oauth",
	"bcrypt",
	"bcryptjs",
	"argon2",
	"crypto-js",
	"md5",
	"sha.js",
	"hash.js",
	"create-hash",
	"create-hmac",
	"pbkdf2",
	"scrypt-js",
	"tweetnacl",
	"elliptic",
	"bn.js",
	"secp256k1",
	"keccak",
	"js-sha3",
	"node-forge",
	"web3",
	"ethers",

	// Databases and caches
	"mongoose",
	"mongodb",
	"mongodb-memory-server",
	"connect-mongo",
	"connect-redis",
	"mysql",
	"mysql2",
	"pg",
	"pg-promise",
	"pg-pool",
	"pg-types",
	"pg-connection-string",
	"pg-cursor",
	"sqlite3",
	"better-sqlite3",
	"redis",
	"ioredis",
	"redis-parser",
	"generic-pool",
	"knex",
	"sequelize",
	"typeorm",
	"prisma",
	"@prisma/client",
	"drizzle-orm",
	"objection",
	"bookshelf",
	"mssql",
	"tedious",
	"oracledb",
	"cassandra-driver",
	"couchbase",
	"nano",
	"level",
	"leveldown",
	"levelup",
	"memdown",
	"lowdb",
	"nedb",
	"dexie",
	"idb",
	"localforage",
	"@elastic/elasticsearch",
	"elasticsearch",
	"lru-cache",
	"node-cache",
	"memory-cache",
	"keyv",
	"cacheable-request",
	"dataloader",

	// Queues and scheduling
	"bull",
	"bullmq",
	"bee-queue",
	"agenda",
	"node-cron",
	"cron",
	"node-schedule",
	"kafkajs",
	"amqplib",
	"amqp-connection-manager",
	"mqtt",
	"nats",
	"sqs-consumer",

	// Realtime
	"socket.io",
	"socket.io-client",
	"ws",
	"sockjs",
	"sockjs-client",
	"engine.io",
	"engine.io-client",
	"pusher",
	"pusher-js",
	"peerjs",
	"simple-peer",
	"graphql-ws",
	"subscriptions-transport-ws",

	// GraphQL
	"graphql",
	"graphql-tag",
	"graphql-request",
	"graphql-yoga",
	"graphql-tools",
	"@graphql-tools/schema",
	"@graphql-tools/utils",
	"@graphql-tools/merge",
	"apollo-server",
	"apollo-server-express",
	"apollo-client",
	"@apollo/client",
	"@apollo/server",
	"express-graphql",
	"type-graphql",
	"urql",
	"relay-runtime",

	// Markup, templating, documents
	"cheerio",
	"htmlparser2",
	"parse5",
	"domhandler",
	"domutils",
	"dom-serializer",
	"css-select",
	"css-what",
	"nth-check",
	"xml2js",
	"fast-xml-parser",
	"xmlbuilder",
	"sax",
	"js-yaml",
	"yaml",
	"toml",
	"ini",
	"rc",
	"cosmiconfig",
	"lilconfig",
	"conf",
	"configstore",
	"env-paths",
	"csv-parse",
	"csv-parser",
	"csv-stringify",
	"fast-csv",
	"papaparse",
	"marked",
	"markdown-it",
	"remark",
	"remark-parse",
	"remark-gfm",
	"rehype",
	"unified",
	"unist-util-visit",
	"mdast-util-to-string",
	"gray-matter",
	"front-matter",
	"highlight.js",
	"prismjs",
	"shiki",
	"handlebars",
	"ejs",
	"pug",
	"mustache",
	"nunjucks",
	"liquidjs",
	"dompurify",
	"sanitize-html",
	"xss",
	"turndown",
	"html-to-text",

	// Images, media, archives
	"sharp",
	"jimp",
	"canvas",
	"image-size",
	"file-type",
	"qrcode",
	"tesseract.js",
	"fluent-ffmpeg",
	"ffmpeg-static",
	"pdfkit",
	"pdf-lib",
	"pdf-parse",
	"pdfjs-dist",
	"docx",
	"exceljs",
	"xlsx",
	"archiver",
	"adm-zip",
	"jszip",
	"yauzl",
	"yazl",
	"tar",
	"tar-stream",
	"tar-fs",
	"unzipper",
	"extract-zip",
	"decompress",
	"pako",
	"lz-string",

	// Validation
	"validator",
	"joi",
	"yup",
	"zod",
	"ajv",
	"ajv-formats",
	"ajv-keywords",
	"class-validator",
	"class-transformer",
	"superstruct",
	"io-ts",
	"runtypes",
	"libphonenumber-js",
	"email-validator",

	// Styling
	"jquery",
	"bootstrap",
	"tailwindcss",
	"@tailwindcss/forms",
	"@tailwindcss/typography",
	"tailwind-merge",
	"tailwindcss-animate",
	"sass",
	"node-sass",
	"less",
	"stylus",
	"postcss",
	"postcss-import",
	"postcss-preset-env",
	"postcss-nested",
	"postcss-value-parser",
	"postcss-selector-parser",
	"autoprefixer",
	"styled-components",
	"styled-jsx",
	"emotion",
	"@emotion/react",
	"@emotion/styled",
	"@emotion/css",
	"@emotion/cache",
	"@emotion/server",
	"jss",
	"polished",
	"color",
	"color-convert",
	"color-name",
	"color-string",
	"tinycolor2",
	"chroma-js",

	// Component libraries
	"material-ui",
	"@mui/material",
	"@mui/icons-material",
	"@mui/system",
	"@mui/styles",
	"@mui/lab",
	"@mui/base",
	"antd",
	"ant-design-vue",
	"@ant-design/icons",
	"@chakra-ui/react",
	"@headlessui/react",
	"@heroicons/react",
	"@radix-ui/react-dialog",
	"@radix-ui/react-dropdown-menu",
	"@radix-ui/react-popover",
	"@radix-ui/react-slot",
	"@radix-ui/react-tooltip",
	"@fortawesome/fontawesome-svg-core",
	"@fortawesome/free-solid-svg-icons",
	"@fortawesome/react-fontawesome",
	"font-awesome",
	"lucide-react",
	"react-bootstrap",
	"reactstrap",
	"semantic-ui-react",
	"primereact",
	"primevue",
	"element-plus",
	"vuetify",
	"quasar",
	"naive-ui",
	"@popperjs/core",
	"popper.js",
	"@floating-ui/dom",
	"@floating-ui/react",
	"framer-motion",
	"animejs",
	"gsap",
	"lottie-web",
	"swiper",
	"slick-carousel",
	"aos",
	"intersection-observer",
	"resize-observer-polyfill",
	"web-vitals",
	"workbox-window",

	// Charts and visualization
	"d3",
	"d3-array",
	"d3-scale",
	"d3-selection",
	"d3-shape",
	"d3-time",
	"d3-time-format",
	"d3-format",
	"d3-color",
	"d3-interpolate",
	"d3-axis",
	"d3-zoom",
	"d3-drag",
	"d3-hierarchy",
	"chart.js",
	"react-chartjs-2",
	"chartjs-adapter-date-fns",
	"recharts",
	"echarts",
	"plotly.js",
	"victory",
	"apexcharts",
	"highcharts",
	"three",
	"@react-three/fiber",
	"@react-three/drei",
	"leaflet",
	"react-leaflet",
	"mapbox-gl",
	"topojson-client",

	// Process and shell
	"execa",
	"shelljs",
	"cross-spawn",
	"spawn-command",
	"which",
	"command-exists",
	"open",
	"opener",
	"signal-exit",
	"exit-hook",
	"tree-kill",
	"ps-tree",
	"pidusage",
	"nodemon",
	"pm2",
	"forever",
	"concurrently",
	"npm-run-all",
	"wait-on",
	"cross-env",
	"dotenv",
	"dotenv-expand",
	"dotenv-cli",
	"config",
	"husky",
	"lint-staged",
	"simple-git-hooks",
	"patch-package",
	"npm-check-updates",
	"depcheck",
	"madge",
	"plop",
	"yeoman-generator",
	"yo",

	// Git and GitHub
	"simple-git",
	"isomorphic-git",
	"@octokit/rest",
	"@octokit/core",
	"@octokit/request",
	"@octokit/graphql",
	"@octokit/auth-token",
	"octokit",
	"hosted-git-info",
	"git-url-parse",

	// Cloud SDKs and services
	"aws-sdk",
	"@aws-sdk/client-s3",
	"@aws-sdk/client-dynamodb",
	"@aws-sdk/client-lambda",
	"@aws-sdk/client-sqs",
	"@aws-sdk/client-sns",
	"@aws-sdk/client-ec2",
	"@aws-sdk/client-sts",
	"@aws-sdk/client-kms",
	"@aws-sdk/client-ssm",
	"@aws-sdk/client-secrets-manager",
	"@aws-sdk/client-cloudwatch-logs",
	"@aws-sdk/credential-providers",
	"@aws-sdk/s3-request-presigner",
	"@aws-sdk/lib-dynamodb",
	"aws-amplify",
	"serverless",
	"@azure/identity",
	"@azure/storage-blob",
	"@azure/msal-node",
	"@azure/msal-browser",
	"@google-cloud/storage",
	"@google-cloud/pubsub",
	"@google-cloud/bigquery",
	"@google-cloud/firestore",
	"@google-cloud/logging",
	"firebase",
	"firebase-admin",
	"firebase-functions",
	"googleapis",
	"google-auth-library",
	"gaxios",
	"stripe",
	"braintree",
	"plaid",
	"twilio",
	"@slack/web-api",
	"@slack/bolt",
	"discord.js",
	"telegraf",
	"node-telegram-bot-api",
	"nodemailer",
	"mjml",
	"@sendgrid/mail",
	"mailgun.js",
	"openai",
	"langchain",
	"@tensorflow/tfjs",

	// Monitoring
	"@sentry/node",
	"@sentry/browser",
	"@sentry/react",
	"@sentry/tracing",
	"newrelic",
	"dd-trace",
	"elastic-apm-node",
	"prom-client",
	"applicationinsights",
	"@opentelemetry/api",
	"@opentelemetry/sdk-node",
	"@opentelemetry/resources",
	"@opentelemetry/semantic-conventions",

	// i18n
	"i18next",
	"i18next-browser-languagedetector",
	"i18next-http-backend",
	"vue-i18n",
	"intl-messageformat",
	"@formatjs/intl",
	"globalize",

	// Electron and desktop
	"electron",
	"electron-builder",
	"electron-updater",
	"electron-store",
	"electron-packager",

	// Documentation and stories
	"jsdoc",
	"typedoc",
	"@docusaurus/core",
	"vuepress",
	"vitepress",
	"storybook",
	"@storybook/react",
	"@storybook/addon-essentials",
	"@storybook/addon-actions",
	"@storybook/addon-links",
}
